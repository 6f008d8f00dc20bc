package ideas

import "strings"

// Filter is the set of predicates applied to produce the visible list.
// An empty field matches everything.
type Filter struct {
	Priority   string
	Category   string
	Status     string
	SearchTerm string
}

// Active reports whether any predicate is set
func (f Filter) Active() bool {
	return f.Priority != "" || f.Category != "" || f.Status != "" || f.SearchTerm != ""
}

// Reset clears every predicate
func (f *Filter) Reset() {
	*f = Filter{}
}

// Matches reports whether idea satisfies all predicates of f
func (f Filter) Matches(idea Idea) bool {
	if f.Priority != "" && f.Priority != string(idea.Priority) {
		return false
	}
	if f.Category != "" && f.Category != idea.Category {
		return false
	}
	if f.Status != "" && f.Status != string(idea.Status) {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(idea.Title), term) &&
			!strings.Contains(strings.ToLower(idea.Description), term) {
			return false
		}
	}
	return true
}

// Apply returns the ideas matching f, in input order
func Apply(items []Idea, f Filter) []Idea {
	out := make([]Idea, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// NextPriority rotates a priority selector: any, Low, Medium, High, any
func NextPriority(current string) string {
	values := make([]string, len(Priorities))
	for i, p := range Priorities {
		values[i] = string(p)
	}
	return cycle(current, values)
}

// NextStatus rotates a status selector: any, Pending, Active, Completed, any
func NextStatus(current string) string {
	values := make([]string, len(Statuses))
	for i, s := range Statuses {
		values[i] = string(s)
	}
	return cycle(current, values)
}

// NextCategory rotates a category selector through the given categories,
// starting and ending at any
func NextCategory(current string, categories []string) string {
	return cycle(current, categories)
}

func cycle(current string, values []string) string {
	if current == "" {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return ""
}
