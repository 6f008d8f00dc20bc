package ideas

import (
	"time"
)

// Priority is the importance level of an idea
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the priority levels in selector order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// String returns the string representation of Priority
func (p Priority) String() string {
	return string(p)
}

// Valid reports whether p is one of the known priority levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the progress state of an idea
type Status string

const (
	StatusPending   Status = "Pending"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// Statuses lists the statuses in selector order
var Statuses = []Status{StatusPending, StatusActive, StatusCompleted}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Idea represents a single tracked project idea
type Idea struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Category    string    `json:"category" yaml:"category"`
	Status      Status    `json:"status" yaml:"status"`
	Notes       string    `json:"notes" yaml:"notes"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Input holds the user-editable fields of an idea
type Input struct {
	Title       string   `validate:"required,max=100,notblank"`
	Description string   `validate:"max=500"`
	Priority    Priority `validate:"required,priority"`
	Category    string   `validate:"required,notblank"`
	Status      Status   `validate:"required,idea_status"`
	Notes       string   `validate:"max=300"`
}

// Input returns the editable fields of the idea
func (i Idea) Input() Input {
	return Input{
		Title:       i.Title,
		Description: i.Description,
		Priority:    i.Priority,
		Category:    i.Category,
		Status:      i.Status,
		Notes:       i.Notes,
	}
}

// apply copies the editable fields of in onto the idea, leaving ID and CreatedAt alone
func (i *Idea) apply(in Input) {
	i.Title = in.Title
	i.Description = in.Description
	i.Priority = in.Priority
	i.Category = in.Category
	i.Status = in.Status
	i.Notes = in.Notes
}
