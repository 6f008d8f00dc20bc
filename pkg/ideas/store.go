package ideas

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no idea matches the requested id
var ErrNotFound = errors.New("idea not found")

// Option configures a Store
type Option func(*Store)

// WithClock sets the function used to stamp CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to assign ids
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store owns the ordered collection of ideas for a session.
// Insertion order is the display order. The store does not validate input;
// callers run Validate first.
type Store struct {
	items []Idea
	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new idea built from in and returns it
func (s *Store) Add(in Input) Idea {
	idea := Idea{
		ID:        s.newID(),
		CreatedAt: s.now(),
	}
	idea.apply(in)
	s.items = append(s.items, idea)
	return idea
}

// Update replaces the editable fields of the idea with the given id
func (s *Store) Update(id string, in Input) (Idea, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Idea{}, ErrNotFound
	}
	s.items[idx].apply(in)
	return s.items[idx], nil
}

// Remove detaches the idea with the given id and returns it
func (s *Store) Remove(id string) (Idea, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Idea{}, ErrNotFound
	}
	idea := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return idea, nil
}

// Reinsert appends a previously removed idea to the end of the collection.
// The idea does not get its original position back.
func (s *Store) Reinsert(idea Idea) {
	s.items = append(s.items, idea)
}

// Get returns the idea with the given id
func (s *Store) Get(id string) (Idea, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Idea{}, ErrNotFound
	}
	return s.items[idx], nil
}

// All returns a copy of the ideas in insertion order
func (s *Store) All() []Idea {
	out := make([]Idea, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of ideas in the store
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
