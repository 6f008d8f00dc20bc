package ideas

import "time"

// sampleIdeas is the starter list a fresh session opens with
var sampleIdeas = []Idea{
	{
		Title:       "E-commerce Platform",
		Description: "Build an online store with payment processing",
		Priority:    PriorityHigh,
		Category:    "Web Development",
		Status:      StatusActive,
		Notes:       "Need to research payment gateways",
		CreatedAt:   time.Date(2023, time.June, 15, 0, 0, 0, 0, time.Local),
	},
	{
		Title:       "Mobile Fitness App",
		Description: "Create a workout tracking application",
		Priority:    PriorityMedium,
		Category:    "Mobile App",
		Status:      StatusPending,
		Notes:       "Research competitor apps first",
		CreatedAt:   time.Date(2023, time.July, 22, 0, 0, 0, 0, time.Local),
	},
	{
		Title:       "Data Visualization Dashboard",
		Description: "Dashboard for company metrics",
		Priority:    PriorityLow,
		Category:    "Data Science",
		Status:      StatusCompleted,
		Notes:       "Used D3.js for charts",
		CreatedAt:   time.Date(2023, time.May, 10, 0, 0, 0, 0, time.Local),
	},
}

// SeedSamples appends the starter ideas, keeping their original creation
// dates but assigning fresh ids
func (s *Store) SeedSamples() {
	for _, sample := range sampleIdeas {
		sample.ID = s.newID()
		s.items = append(s.items, sample)
	}
}
