package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ideatracker/pkg/config"
	"ideatracker/pkg/ideas"
	"ideatracker/pkg/keymaps"
	"ideatracker/pkg/undo"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DetailMode
	DeleteConfirmMode
	SearchMode   // Mode for searching ideas
	HelpViewMode // Mode for displaying help
)

// Model represents the application state
type Model struct {
	table         table.Model
	store         *ideas.Store
	undo          *undo.Coordinator
	logger        *zap.Logger
	now           func() time.Time
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Derived view state, recomputed by refresh
	visible    []ideas.Idea
	categories []string
	filter     ideas.Filter

	// Form state
	mode        InputMode
	form        form
	searchInput textinput.Model

	// Idea being edited, viewed or confirmed for deletion
	selected ideas.Idea

	toast    *toast
	toastSeq int
}

// NewModel creates a new UI model over the given store and undo coordinator
func NewModel(store *ideas.Store, coordinator *undo.Coordinator, cfg config.Config, styles config.Styles, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	columns := []table.Column{
		{Title: "Status", Width: 11},
		{Title: "Priority", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Title", Width: 40},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	// Letters are reserved for idea commands, so the table only moves with
	// arrows and paging keys
	t.KeyMap = table.KeyMap{
		LineUp:       key.NewBinding(key.WithKeys("up", "k")),
		LineDown:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		GotoTop:      key.NewBinding(key.WithKeys("home")),
		GotoBottom:   key.NewBinding(key.WithKeys("end")),
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search titles and descriptions"
	searchInput.Width = 40

	m := Model{
		table:       t,
		store:       store,
		undo:        coordinator,
		logger:      logger,
		now:         time.Now,
		config:      cfg,
		styles:      styles,
		keyMap:      keymaps.BuildKeyMap(cfg.KeyMap),
		mode:        NormalMode,
		form:        newForm(),
		searchInput: searchInput,
	}

	m.refresh()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// Visible returns the ideas currently shown in the list
func (m Model) Visible() []ideas.Idea {
	return m.visible
}

// Filter returns the active filter
func (m Model) Filter() ideas.Filter {
	return m.filter
}

// Mode returns the current input mode
func (m Model) Mode() InputMode {
	return m.mode
}
