package ideas

import "strings"

// DeriveCategories returns the distinct non-blank categories in use, trimmed,
// in first-seen order. Callers should not depend on the order.
func DeriveCategories(items []Idea) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}

	return categories
}
