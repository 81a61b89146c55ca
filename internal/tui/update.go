package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chartkit/internal/render"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ExportDoneMsg:
		return m.handleExportDone(msg)

	case ToastExpiredMsg:
		if msg.ID == m.toastID {
			m.toast = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.MovePrev()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.MoveNext()
		return m, nil

	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.log.Debug("exporting chart")
		return m, exportCmd(m.outDir, m.index, m.ariaLabel(), m.chartModel())
	}

	return m, nil
}

func (m Model) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		m.log.With("path", msg.Path).Info("exported svg")
		return m.showToast(components.ToastSuccess, "Saved "+msg.Path)
	case errors.Is(msg.Err, render.ErrEmptyChart), errors.Is(msg.Err, render.ErrNoVisibleData):
		m.log.Warn(msg.Err.Error())
		return m.showToast(components.ToastWarning, "Nothing to export")
	default:
		m.log.Error(msg.Err, "svg export failed")
		return m.showToast(components.ToastDanger, "Export failed: "+msg.Err.Error())
	}
}

func (m Model) showToast(level components.ToastLevel, text string) (tea.Model, tea.Cmd) {
	m.toastID++
	m.toast = components.NewToast(level, text)
	return m, expireToastCmd(m.toastID)
}
