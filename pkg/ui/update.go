package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ideatracker/pkg/ideas"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case NormalMode:
			m.err = nil
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.AddIdea):
				m.mode = AddMode
				m.form.reset()
				return m, nil

			case key.Matches(msg, m.keyMap.EditIdea):
				if idea, ok := m.selectedIdea(); ok {
					m.startEdit(idea)
					return m, nil
				}

			case key.Matches(msg, m.keyMap.DeleteIdea):
				if idea, ok := m.selectedIdea(); ok {
					m.mode = DeleteConfirmMode
					m.selected = idea
				}

			case key.Matches(msg, m.keyMap.ViewIdea):
				if idea, ok := m.selectedIdea(); ok {
					m.mode = DetailMode
					m.selected = idea
				}

			case key.Matches(msg, m.keyMap.UndoDelete):
				cmds = append(cmds, m.undoDelete())

			case key.Matches(msg, m.keyMap.SearchIdeas):
				m.mode = SearchMode
				m.searchInput.SetValue(m.filter.SearchTerm)
				m.searchInput.CursorEnd()
				cmds = append(cmds, m.searchInput.Focus())
				return m, tea.Batch(cmds...)

			case key.Matches(msg, m.keyMap.CyclePriorityFilter):
				m.filter.Priority = ideas.NextPriority(m.filter.Priority)
				m.refresh()

			case key.Matches(msg, m.keyMap.CycleCategoryFilter):
				m.filter.Category = ideas.NextCategory(m.filter.Category, m.categories)
				m.refresh()

			case key.Matches(msg, m.keyMap.CycleStatusFilter):
				m.filter.Status = ideas.NextStatus(m.filter.Status)
				m.refresh()

			case key.Matches(msg, m.keyMap.ClearFilters):
				m.filter.Reset()
				m.refresh()

			case key.Matches(msg, m.keyMap.ExportIdeas):
				cmds = append(cmds, m.exportVisible())
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.form.reset()
				m.selected = ideas.Idea{}
				return m, nil

			case "tab", "down":
				if m.form.active == fieldCategory && msg.String() == "down" {
					m.form.cycleCategory(m.categories, 1)
				} else {
					m.form.next()
				}
				return m, nil

			case "shift+tab", "up":
				if m.form.active == fieldCategory && msg.String() == "up" {
					m.form.cycleCategory(m.categories, -1)
				} else {
					m.form.prev()
				}
				return m, nil

			case "enter":
				if m.form.onLastField() {
					return m, m.submitForm()
				}
				m.form.next()
				return m, nil

			case "ctrl+s":
				return m, m.submitForm()

			case "left", "right", " ":
				if m.form.active == fieldPriority || m.form.active == fieldStatus {
					step := 1
					if msg.String() == "left" {
						step = -1
					}
					m.form.cycleChoice(step)
					return m, nil
				}
			}

			cmds = append(cmds, m.form.update(msg))

		case DetailMode:
			switch {
			case msg.String() == "esc", key.Matches(msg, m.keyMap.ViewIdea), key.Matches(msg, m.keyMap.QuitApp):
				m.mode = NormalMode
				m.selected = ideas.Idea{}

			case key.Matches(msg, m.keyMap.EditIdea):
				m.startEdit(m.selected)

			case key.Matches(msg, m.keyMap.DeleteIdea):
				m.mode = DeleteConfirmMode
			}
			return m, nil

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.filter.SearchTerm = ""
				m.searchInput.Blur()
				m.refresh()
				return m, nil

			case "enter":
				m.mode = NormalMode
				m.searchInput.Blur()
				m.logger.Debug("search_applied", zap.String("term", m.filter.SearchTerm))
				return m, nil
			}

			// Filter as the user types
			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)
			m.filter.SearchTerm = m.searchInput.Value()
			m.refresh()

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				cmds = append(cmds, m.deleteSelected())

			case "n", "N", "esc":
				m.mode = NormalMode
				m.selected = ideas.Idea{}
			}
			return m, tea.Batch(cmds...)

		case HelpViewMode:
			if msg.String() == "esc" || key.Matches(msg, m.keyMap.ShowHelp) {
				m.mode = NormalMode
			}
			return m, nil
		}

	case toastExpiredMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil

	case undoWindowMsg:
		if idea, expired := m.undo.Expire(msg.at); expired {
			m.logger.Info("deletion_final", zap.String("id", idea.ID), zap.String("title", idea.Title))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 10)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startEdit opens the form populated with idea
func (m *Model) startEdit(idea ideas.Idea) {
	m.mode = EditMode
	m.selected = idea
	m.form.load(idea)
}
