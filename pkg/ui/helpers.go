package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ideatracker/pkg/commands"
	"ideatracker/pkg/ideas"
	"ideatracker/pkg/undo"
)

const (
	successToastDuration = 3 * time.Second
	restoreToastDuration = 2 * time.Second
	errorToastDuration   = 5 * time.Second
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
	toastUndo
	toastInfo
)

// toast is a transient message shown under the list
type toast struct {
	kind  toastKind
	title string
	body  string
	seq   int
}

// toastExpiredMsg dismisses the toast with the matching sequence number
type toastExpiredMsg struct {
	seq int
}

// undoWindowMsg fires when the grace window of a deletion has passed
type undoWindowMsg struct {
	at time.Time
}

// refresh recomputes categories and the filtered view, then rebuilds the table
func (m *Model) refresh() {
	all := m.store.All()
	m.categories = ideas.DeriveCategories(all)
	m.visible = ideas.Apply(all, m.filter)

	rows := make([]table.Row, 0, len(m.visible))
	for _, idea := range m.visible {
		rows = append(rows, table.Row{
			statusLabel(idea.Status),
			string(idea.Priority),
			idea.Category,
			idea.Title,
			idea.CreatedAt.Format("2006-01-02"),
		})
	}
	m.table.SetRows(rows)

	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}

	m.logger.Debug("view_refreshed",
		zap.Int("visible", len(m.visible)),
		zap.Int("total", len(all)),
		zap.Bool("filtered", m.filter.Active()))
}

// selectedIdea returns the idea under the table cursor
func (m Model) selectedIdea() (ideas.Idea, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return ideas.Idea{}, false
	}
	return m.visible[idx], true
}

// showToast replaces the current toast and schedules its dismissal
func (m *Model) showToast(kind toastKind, title, body string, d time.Duration) tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	m.toast = &toast{kind: kind, title: title, body: body, seq: seq}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// submitForm validates the form and adds or updates the idea. Invalid input
// keeps the form open with the field errors.
func (m *Model) submitForm() tea.Cmd {
	in := m.form.input()

	if err := ideas.Validate(in); err != nil {
		var verr *ideas.ValidationError
		if errors.As(err, &verr) {
			m.form.errs = verr
			return nil
		}
		m.err = err
		return nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case AddMode:
		idea := m.store.Add(in)
		m.logger.Info("idea_added", zap.String("id", idea.ID), zap.String("title", idea.Title))
		cmd = m.showToast(toastSuccess, "Idea Added",
			fmt.Sprintf("%q has been added successfully", idea.Title), successToastDuration)

	case EditMode:
		idea, err := m.store.Update(m.selected.ID, in)
		if err != nil {
			m.logger.Warn("idea_update_failed", zap.String("id", m.selected.ID), zap.Error(err))
			m.err = fmt.Errorf("updating %q: %w", m.selected.Title, err)
			break
		}
		m.logger.Info("idea_updated", zap.String("id", idea.ID))
		cmd = m.showToast(toastSuccess, "Idea Updated",
			fmt.Sprintf("%q has been updated successfully", idea.Title), successToastDuration)
	}

	m.mode = NormalMode
	m.form.reset()
	m.selected = ideas.Idea{}
	m.refresh()
	return cmd
}

// deleteSelected hands the selected idea to the undo coordinator and shows
// the undo toast for the grace window
func (m *Model) deleteSelected() tea.Cmd {
	handle, err := m.undo.Delete(m.selected.ID)
	m.mode = NormalMode
	m.selected = ideas.Idea{}
	if err != nil {
		m.logger.Warn("idea_delete_failed", zap.Error(err))
		m.err = err
		return nil
	}

	m.refresh()
	window := m.undo.Window()
	toastCmd := m.showToast(toastUndo, "Idea Deleted",
		fmt.Sprintf("%q has been deleted", handle.Idea.Title), window)
	expireCmd := tea.Tick(window, func(t time.Time) tea.Msg {
		return undoWindowMsg{at: t}
	})
	return tea.Batch(toastCmd, expireCmd)
}

// undoDelete restores the pending deletion, if it is still within its window
func (m *Model) undoDelete() tea.Cmd {
	idea, err := m.undo.Undo()
	if err != nil {
		if errors.Is(err, undo.ErrUndoExpired) {
			return m.showToast(toastInfo, "Nothing to undo", "", restoreToastDuration)
		}
		m.err = err
		return nil
	}

	m.logger.Info("idea_restored", zap.String("id", idea.ID))
	m.refresh()
	return m.showToast(toastSuccess, "Idea Restored",
		fmt.Sprintf("%q has been restored", idea.Title), restoreToastDuration)
}

// exportVisible writes the filtered list to the configured export directory
func (m *Model) exportVisible() tea.Cmd {
	path, err := commands.ExportFile(m.config.ExportDir, m.visible, m.config.ExportFormat, m.now())
	if err != nil {
		m.logger.Warn("export_failed", zap.Error(err))
		return m.showToast(toastError, "Export Failed", err.Error(), errorToastDuration)
	}
	m.logger.Info("ideas_exported", zap.String("path", path), zap.Int("count", len(m.visible)))
	return m.showToast(toastSuccess, "Ideas Exported",
		fmt.Sprintf("%d idea(s) written to %s", len(m.visible), path), successToastDuration)
}

func statusLabel(s ideas.Status) string {
	switch s {
	case ideas.StatusCompleted:
		return "[x] Done"
	case ideas.StatusActive:
		return "[~] Active"
	default:
		return "[ ] Pending"
	}
}
