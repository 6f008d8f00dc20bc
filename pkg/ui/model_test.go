package ui

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ideatracker/pkg/config"
	"ideatracker/pkg/ideas"
	"ideatracker/pkg/undo"
)

type fixture struct {
	store *ideas.Store
	undo  *undo.Coordinator
	clock time.Time
}

func newTestModel(t *testing.T, cfg config.Config) (Model, *fixture) {
	t.Helper()

	fx := &fixture{clock: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)}
	now := func() time.Time { return fx.clock }

	n := 0
	fx.store = ideas.NewStore(
		ideas.WithClock(now),
		ideas.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("%d", n)
		}),
	)
	fx.store.SeedSamples()

	logger := zaptest.NewLogger(t)
	fx.undo = undo.NewCoordinator(fx.store, undo.DefaultWindow, undo.WithClock(now), undo.WithLogger(logger))

	return NewModel(fx.store, fx.undo, cfg, config.DefaultStyles(), logger), fx
}

func keyMsg(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+e":    tea.KeyCtrlE,
		"ctrl+f":    tea.KeyCtrlF,
	}
	if kt, ok := special[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func titles(items []ideas.Idea) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestNewModel_ShowsSamples(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	assert.Len(t, m.Visible(), 3)
	assert.Equal(t, []string{"Web Development", "Mobile App", "Data Science"}, m.categories)
	assert.Contains(t, m.View(), "Showing 3 of 3 ideas")
}

func TestAddIdea(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "a")
	require.Equal(t, AddMode, m.Mode())

	m = press(m,
		"Recipe app", "tab",
		"Plan meals for the week", "tab",
		"right", "tab",
		"Cooking", "tab",
		"tab",
		"buy groceries", "enter",
	)

	require.Equal(t, NormalMode, m.Mode())
	require.Equal(t, 4, fx.store.Len())

	added := fx.store.All()[3]
	assert.Equal(t, "4", added.ID)
	assert.Equal(t, fx.clock, added.CreatedAt)
	assert.Equal(t, "Recipe app", added.Title)
	assert.Equal(t, "Plan meals for the week", added.Description)
	assert.Equal(t, ideas.PriorityHigh, added.Priority)
	assert.Equal(t, "Cooking", added.Category)
	assert.Equal(t, ideas.StatusPending, added.Status)
	assert.Equal(t, "buy groceries", added.Notes)

	assert.Contains(t, m.categories, "Cooking")
	require.NotNil(t, m.toast)
	assert.Equal(t, "Idea Added", m.toast.title)
}

func TestAddIdea_ValidationKeepsFormOpen(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "a", "   ", "ctrl+s")

	assert.Equal(t, AddMode, m.Mode())
	assert.Equal(t, 3, fx.store.Len())
	require.NotNil(t, m.form.errs)
	assert.Equal(t, "Title is required", m.form.errs.Field("Title"))
	assert.Equal(t, "Category is required", m.form.errs.Field("Category"))
	assert.Contains(t, m.View(), "Category is required")

	m = press(m, "esc")
	assert.Equal(t, NormalMode, m.Mode())
	assert.Nil(t, m.form.errs)
}

func TestAddIdea_PickExistingCategory(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "a", "Chess bot", "tab", "tab", "tab", "down", "down", "ctrl+s")

	require.Equal(t, 4, fx.store.Len())
	assert.Equal(t, "Mobile App", fx.store.All()[3].Category)
}

func TestEditIdea_KeepsIdentity(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})
	before := fx.store.All()[0]

	fx.clock = fx.clock.Add(time.Hour)
	m = press(m, "e")
	require.Equal(t, EditMode, m.Mode())
	assert.Equal(t, before.Title, m.form.title.Value())

	m = press(m, "tab", "tab", "right", "ctrl+s")
	require.Equal(t, NormalMode, m.Mode())

	after, err := fx.store.Get(before.ID)
	require.NoError(t, err)
	assert.Equal(t, ideas.PriorityLow, after.Priority)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, "Idea Updated", m.toast.title)
}

func TestFilters(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	m = press(m, "p")
	assert.Equal(t, []string{"Data Visualization Dashboard"}, titles(m.Visible()))

	m = press(m, "p")
	assert.Equal(t, []string{"Mobile Fitness App"}, titles(m.Visible()))

	m = press(m, "x")
	assert.Len(t, m.Visible(), 3)
	assert.False(t, m.Filter().Active())

	m = press(m, "c")
	assert.Equal(t, "Web Development", m.Filter().Category)
	assert.Equal(t, []string{"E-commerce Platform"}, titles(m.Visible()))

	m = press(m, "s")
	assert.Equal(t, "Pending", m.Filter().Status)
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No ideas match the current filters")
}

func TestSearch(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	m = press(m, "/")
	require.Equal(t, SearchMode, m.Mode())

	m = press(m, "APP")
	assert.Equal(t, []string{"Mobile Fitness App"}, titles(m.Visible()))

	m = press(m, "enter")
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, "APP", m.Filter().SearchTerm)
	assert.Len(t, m.Visible(), 1)

	m = press(m, "ctrl+f", "esc")
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, "", m.Filter().SearchTerm)
	assert.Len(t, m.Visible(), 3)
}

func TestDeleteAndUndo(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "down", "d")
	require.Equal(t, DeleteConfirmMode, m.Mode())
	assert.Equal(t, "Mobile Fitness App", m.selected.Title)

	m = press(m, "y")
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, 2, fx.store.Len())
	require.NotNil(t, m.toast)
	assert.Equal(t, toastUndo, m.toast.kind)
	assert.Contains(t, m.View(), "press u to undo")

	m = press(m, "u")
	all := fx.store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[2].ID)
	assert.Len(t, m.Visible(), 3)
	assert.Equal(t, "Idea Restored", m.toast.title)
}

func TestDeleteCancelled(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "d", "n")
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, 3, fx.store.Len())
}

func TestUndoAfterWindow(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "d", "y")
	require.Equal(t, 2, fx.store.Len())

	next, _ := m.Update(undoWindowMsg{at: fx.clock.Add(undo.DefaultWindow)})
	m = next.(Model)

	_, _, pending := fx.undo.Pending()
	assert.False(t, pending)

	m = press(m, "u")
	assert.Equal(t, 2, fx.store.Len())
	assert.Equal(t, "Nothing to undo", m.toast.title)
}

func TestSecondDeleteForfeitsFirst(t *testing.T) {
	m, fx := newTestModel(t, config.Config{})

	m = press(m, "d", "y", "d", "y")
	require.Equal(t, 1, fx.store.Len())

	m = press(m, "u")
	assert.Equal(t, []string{"Data Visualization Dashboard", "Mobile Fitness App"}, titles(fx.store.All()))

	m = press(m, "u")
	assert.Equal(t, 2, fx.store.Len())
}

func TestDetailView(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	m = press(m, "enter")
	require.Equal(t, DetailMode, m.Mode())

	view := m.View()
	assert.Contains(t, view, "Created on June 15, 2023")
	assert.Contains(t, view, "Need to research payment gateways")

	m = press(m, "e")
	assert.Equal(t, EditMode, m.Mode())

	m = press(m, "esc", "enter", "esc")
	assert.Equal(t, NormalMode, m.Mode())
}

func TestHelpView(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	m = press(m, "?")
	require.Equal(t, HelpViewMode, m.Mode())
	assert.Contains(t, m.View(), "Available Commands")
	assert.Contains(t, m.View(), "undo last delete")

	m = press(m, "esc")
	assert.Equal(t, NormalMode, m.Mode())
}

func TestExportVisible(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, config.Config{ExportDir: dir, ExportFormat: "json"})

	m = press(m, "p", "ctrl+e")

	files, err := filepath.Glob(filepath.Join(dir, "ideas-*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "Ideas Exported", m.toast.title)
	assert.Contains(t, m.toast.body, "1 idea(s)")
}

func TestExportUnknownFormat(t *testing.T) {
	m, _ := newTestModel(t, config.Config{ExportDir: t.TempDir(), ExportFormat: "csv"})

	m = press(m, "ctrl+e")
	assert.Equal(t, "Export Failed", m.toast.title)
}

func TestToastExpiry(t *testing.T) {
	m, _ := newTestModel(t, config.Config{})

	m = press(m, "u")
	require.NotNil(t, m.toast)
	seq := m.toast.seq

	next, _ := m.Update(toastExpiredMsg{seq: seq - 1})
	m = next.(Model)
	assert.NotNil(t, m.toast)

	next, _ = m.Update(toastExpiredMsg{seq: seq})
	m = next.(Model)
	assert.Nil(t, m.toast)
}

func TestKeymapOverride(t *testing.T) {
	m, _ := newTestModel(t, config.Config{KeyMap: map[string]string{"addidea": "n"}})

	m = press(m, "a")
	assert.Equal(t, NormalMode, m.Mode())

	m = press(m, "n")
	assert.Equal(t, AddMode, m.Mode())
}
