package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"ideatracker/pkg/ideas"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.banner(" Project Ideas ", m.styles.AccentColor))
		sb.WriteString("\n\n")

		if len(m.visible) == 0 {
			sb.WriteString(m.emptyState())
		} else {
			sb.WriteString(m.table.View())
		}
		sb.WriteString("\n")
		sb.WriteString(m.statusLine())
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.banner(" Add New Project Idea ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.banner(" Edit Project Idea ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DetailMode:
		sb.WriteString(m.banner(" "+m.selected.Title+" ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderDetail(m.selected))

	case DeleteConfirmMode:
		sb.WriteString(m.banner(" Delete Idea ", m.styles.ErrorColor))
		sb.WriteString("\n\n")
		sb.WriteString("Are you sure you want to delete this idea?\n\n")
		sb.WriteString(fmt.Sprintf("Title: %s\n", m.selected.Title))
		sb.WriteString(fmt.Sprintf("Category: %s\n", m.selected.Category))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(
			fmt.Sprintf("Press Y to confirm, N to cancel. You can undo for %s.", m.undo.Window())))

	case SearchMode:
		sb.WriteString(m.banner(" Search Ideas ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.muted(fmt.Sprintf("%d matching idea(s)", len(m.visible))))

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	if m.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.toast != nil {
		sb.WriteString("\n\n")
		sb.WriteString(m.renderToast())
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) banner(text, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

func (m Model) muted(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor)).Render(text)
}

// emptyState explains why the list is empty
func (m Model) emptyState() string {
	if m.store.Len() > 0 && m.filter.Active() {
		return m.muted("No ideas match the current filters. Press x to clear them.")
	}
	return m.muted("No project ideas found. Press a to add your first idea.")
}

// statusLine summarises counts and active filters
func (m Model) statusLine() string {
	parts := []string{fmt.Sprintf("Showing %d of %d ideas", len(m.visible), m.store.Len())}

	if m.filter.Active() {
		var active []string
		if m.filter.Priority != "" {
			active = append(active, "priority: "+m.filter.Priority)
		}
		if m.filter.Category != "" {
			active = append(active, "category: "+m.filter.Category)
		}
		if m.filter.Status != "" {
			active = append(active, "status: "+m.filter.Status)
		}
		if m.filter.SearchTerm != "" {
			active = append(active, fmt.Sprintf("search: %q", m.filter.SearchTerm))
		}
		parts = append(parts, "("+strings.Join(active, ", ")+")")
	} else {
		parts = append(parts, "(no filter)")
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(strings.Join(parts, " "))
}

func (m Model) priorityColor(p ideas.Priority) string {
	switch p {
	case ideas.PriorityHigh:
		return m.styles.HighPriorityColor
	case ideas.PriorityMedium:
		return m.styles.MediumPriorityColor
	default:
		return m.styles.LowPriorityColor
	}
}

func (m Model) statusColor(s ideas.Status) string {
	switch s {
	case ideas.StatusActive:
		return m.styles.ActiveColor
	case ideas.StatusCompleted:
		return m.styles.CompletedColor
	default:
		return m.styles.PendingColor
	}
}

func (m Model) badge(text, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Border(lipgloss.RoundedBorder(), false, true).
		BorderForeground(lipgloss.Color(color)).
		Render(text)
}

// renderDetail shows every field of an idea
func (m Model) renderDetail(idea ideas.Idea) string {
	var sb strings.Builder
	label := lipgloss.NewStyle().Bold(true)

	sb.WriteString(m.muted("Created on " + idea.CreatedAt.Format("January 2, 2006")))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.badge(string(idea.Priority), m.priorityColor(idea.Priority)), " ",
		m.badge(string(idea.Status), m.statusColor(idea.Status)), " ",
		m.badge(idea.Category, m.styles.CategoryColor)))
	sb.WriteString("\n\n")

	description := idea.Description
	if description == "" {
		description = m.muted("No description provided")
	}
	sb.WriteString(label.Render("Description"))
	sb.WriteString("\n")
	sb.WriteString(description)
	sb.WriteString("\n\n")

	notes := idea.Notes
	if notes == "" {
		notes = m.muted("No notes added")
	}
	sb.WriteString(label.Render("Notes"))
	sb.WriteString("\n")
	sb.WriteString(notes)
	sb.WriteString("\n")

	return sb.String()
}

// renderForm renders the input form for adding/editing ideas
func (m Model) renderForm() string {
	var sb strings.Builder

	activeLabel := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor))

	for field := 0; field < fieldCount; field++ {
		name := fieldNames[field]
		if field == fieldTitle || field == fieldCategory {
			name += " *"
		}
		if field == m.form.active {
			sb.WriteString(activeLabel.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")

		switch field {
		case fieldTitle:
			sb.WriteString(m.form.title.View())
		case fieldDescription:
			sb.WriteString(m.form.description.View())
		case fieldCategory:
			sb.WriteString(m.form.category.View())
		case fieldNotes:
			sb.WriteString(m.form.notes.View())
		case fieldPriority:
			sb.WriteString(m.renderChoice(priorityNames(), string(m.form.priority)))
		case fieldStatus:
			sb.WriteString(m.renderChoice(statusNames(), string(m.form.status)))
		}
		sb.WriteString("\n")

		if m.form.errs != nil {
			if msg := m.form.errs.Field(fieldNames[field]); msg != "" {
				sb.WriteString(errStyle.Render("  " + msg))
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	if m.form.active == fieldCategory && len(m.categories) > 0 {
		sb.WriteString(m.muted("Existing categories: " + strings.Join(m.categories, ", ")))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderChoice(options []string, current string) string {
	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor))

	parts := make([]string, len(options))
	for i, opt := range options {
		if opt == current {
			parts[i] = selected.Render(" " + opt + " ")
		} else {
			parts[i] = " " + opt + " "
		}
	}
	return "  " + strings.Join(parts, " ")
}

func priorityNames() []string {
	names := make([]string, len(ideas.Priorities))
	for i, p := range ideas.Priorities {
		names[i] = string(p)
	}
	return names
}

func statusNames() []string {
	names := make([]string, len(ideas.Statuses))
	for i, s := range ideas.Statuses {
		names[i] = string(s)
	}
	return names
}

func (m Model) renderToast() string {
	color := m.styles.NormalTextColor
	switch m.toast.kind {
	case toastSuccess:
		color = m.styles.SuccessColor
	case toastError, toastUndo:
		color = m.styles.ErrorColor
	}

	text := lipgloss.NewStyle().Bold(true).Render(m.toast.title)
	if m.toast.body != "" {
		text += "  " + m.toast.body
	}
	if m.toast.kind == toastUndo {
		text += "  " + m.muted(fmt.Sprintf("(press %s to undo)", m.keyMap.UndoDelete.Help().Key))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		Render(text)
}

// renderHelp lists every command
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(strings.Join(binding.Keys(), "/"))))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddIdea)
	addCommand(m.keyMap.EditIdea)
	addCommand(m.keyMap.DeleteIdea)
	addCommand(m.keyMap.ViewIdea)
	addCommand(m.keyMap.UndoDelete)
	addCommand(m.keyMap.ExportIdeas)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Filter Commands"))
	sb.WriteString("\n\n")

	addCommand(m.keyMap.SearchIdeas)
	addCommand(m.keyMap.CyclePriorityFilter)
	addCommand(m.keyMap.CycleCategoryFilter)
	addCommand(m.keyMap.CycleStatusFilter)
	addCommand(m.keyMap.ClearFilters)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Form Commands"))
	sb.WriteString("\n\n")
	sb.WriteString(descStyle.Render("next / previous field: ") + keyStyle.Render("tab/shift+tab"))
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("change priority or status: ") + keyStyle.Render("←/→"))
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("pick existing category: ") + keyStyle.Render("↑/↓"))
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("save: ") + keyStyle.Render("enter on last field / ctrl+s"))
	sb.WriteString("\n")

	return sb.String()
}

// helpBar renders a status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor)).
		Render(" • ")

	addAction := func(b key.Binding, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(b.Help().Key), descStyle.Render(desc)))
	}
	addRaw := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction(m.keyMap.AddIdea, "add")
		addAction(m.keyMap.EditIdea, "edit")
		addAction(m.keyMap.DeleteIdea, "del")
		addAction(m.keyMap.ViewIdea, "view")
		addAction(m.keyMap.SearchIdeas, "search")
		addAction(m.keyMap.CyclePriorityFilter, "priority")
		addAction(m.keyMap.CycleCategoryFilter, "category")
		addAction(m.keyMap.CycleStatusFilter, "status")
		if m.filter.Active() {
			addAction(m.keyMap.ClearFilters, "clear")
		}
		if _, _, pending := m.undo.Pending(); pending {
			addAction(m.keyMap.UndoDelete, "undo")
		}
		addAction(m.keyMap.ShowHelp, "help")
		addAction(m.keyMap.QuitApp, "quit")

	case AddMode, EditMode:
		addRaw("tab", "next field")
		addRaw("←/→", "choose")
		addRaw("ctrl+s", "save")
		addRaw("esc", "cancel")

	case DetailMode:
		addAction(m.keyMap.EditIdea, "edit")
		addAction(m.keyMap.DeleteIdea, "delete")
		addRaw("esc", "back")

	case DeleteConfirmMode:
		addRaw("y", "confirm")
		addRaw("n", "cancel")

	case SearchMode:
		addRaw("enter", "done")
		addRaw("esc", "clear")

	case HelpViewMode:
		addRaw("esc", "back")
	}

	return strings.Join(actions, separator)
}
