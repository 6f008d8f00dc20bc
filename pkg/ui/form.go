package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ideatracker/pkg/ideas"
)

// Form fields in tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldCategory
	fieldStatus
	fieldNotes
	fieldCount
)

var fieldNames = [fieldCount]string{"Title", "Description", "Priority", "Category", "Status", "Notes"}

// form is the add/edit idea form. Priority and status are choice fields
// cycled with left/right; the rest are text inputs.
type form struct {
	title       textinput.Model
	description textinput.Model
	category    textinput.Model
	notes       textinput.Model
	priority    ideas.Priority
	status      ideas.Status
	active      int
	errs        *ideas.ValidationError
}

func newForm() form {
	title := textinput.New()
	title.Placeholder = "Give your idea a name"
	title.CharLimit = 100
	title.Width = 50

	description := textinput.New()
	description.Placeholder = "Describe your project idea"
	description.CharLimit = 500
	description.Width = 50

	category := textinput.New()
	category.Placeholder = "Pick with ↑/↓ or type a new category"
	category.Width = 50

	notes := textinput.New()
	notes.Placeholder = "Additional notes or thoughts"
	notes.CharLimit = 300
	notes.Width = 50

	f := form{
		title:       title,
		description: description,
		category:    category,
		notes:       notes,
	}
	f.reset()
	return f
}

// reset clears all inputs and restores the default choices
func (f *form) reset() {
	f.title.Reset()
	f.description.Reset()
	f.category.Reset()
	f.notes.Reset()
	f.priority = ideas.PriorityMedium
	f.status = ideas.StatusPending
	f.errs = nil
	f.focus(fieldTitle)
}

// load fills the form from an existing idea
func (f *form) load(idea ideas.Idea) {
	f.reset()
	f.title.SetValue(idea.Title)
	f.description.SetValue(idea.Description)
	f.category.SetValue(idea.Category)
	f.notes.SetValue(idea.Notes)
	f.priority = idea.Priority
	f.status = idea.Status
}

// input returns the form contents, trimming title and category
func (f form) input() ideas.Input {
	return ideas.Input{
		Title:       strings.TrimSpace(f.title.Value()),
		Description: f.description.Value(),
		Priority:    f.priority,
		Category:    strings.TrimSpace(f.category.Value()),
		Status:      f.status,
		Notes:       f.notes.Value(),
	}
}

func (f *form) focus(field int) {
	f.active = (field + fieldCount) % fieldCount
	for i, in := range f.textInputs() {
		if i == f.active {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *form) next() { f.focus(f.active + 1) }

func (f *form) prev() { f.focus(f.active - 1) }

func (f *form) onLastField() bool {
	return f.active == fieldCount-1
}

// textInputs indexes the text inputs by field
func (f *form) textInputs() map[int]*textinput.Model {
	return map[int]*textinput.Model{
		fieldTitle:       &f.title,
		fieldDescription: &f.description,
		fieldCategory:    &f.category,
		fieldNotes:       &f.notes,
	}
}

// cycleChoice rotates the active choice field by step
func (f *form) cycleChoice(step int) {
	switch f.active {
	case fieldPriority:
		f.priority = ideas.Priorities[rotate(indexOf(ideas.Priorities, f.priority), step, len(ideas.Priorities))]
	case fieldStatus:
		f.status = ideas.Statuses[rotate(indexOf(ideas.Statuses, f.status), step, len(ideas.Statuses))]
	}
}

// cycleCategory replaces the category input with the next existing category
func (f *form) cycleCategory(categories []string, step int) {
	if len(categories) == 0 {
		return
	}
	current := strings.TrimSpace(f.category.Value())
	idx := -1
	for i, c := range categories {
		if c == current {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(categories) - 1
	default:
		idx = rotate(idx, step, len(categories))
	}
	f.category.SetValue(categories[idx])
	f.category.CursorEnd()
}

// update forwards a message to the focused text input
func (f *form) update(msg tea.Msg) tea.Cmd {
	in, ok := f.textInputs()[f.active]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func rotate(idx, step, n int) int {
	if idx < 0 {
		return 0
	}
	return ((idx+step)%n + n) % n
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
