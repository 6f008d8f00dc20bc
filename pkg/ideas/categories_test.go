package ideas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCategories(t *testing.T) {
	items := []Idea{
		{Category: "Web"},
		{Category: "  "},
		{Category: ""},
		{Category: " Mobile "},
		{Category: "Web"},
		{Category: "Mobile"},
		{Category: "\t"},
		{Category: "Data"},
	}

	got := DeriveCategories(items)

	assert.ElementsMatch(t, []string{"Web", "Mobile", "Data"}, got)
	for _, c := range got {
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

func TestDeriveCategories_Empty(t *testing.T) {
	assert.Empty(t, DeriveCategories(nil))
	assert.Empty(t, DeriveCategories([]Idea{{Category: " "}}))
}
