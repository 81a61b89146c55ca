package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chartkit/internal/render"
	chartkiterrors "github.com/alexisbeaulieu97/chartkit/pkg/errors"
)

// exportCmd writes the chart as SVG into dir.
func exportCmd(dir string, index int, label string, model any) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("create export dir: %w", err)}
		}

		path := filepath.Join(dir, render.FileName(index, label))
		f, err := os.Create(path)
		if err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("create svg: %w", err)}
		}

		if err := render.SVG(f, model, render.DefaultOptions); err != nil {
			f.Close()
			os.Remove(path)
			return ExportDoneMsg{Err: chartkiterrors.NewRenderError(label, "svg", err)}
		}
		if err := f.Close(); err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("close svg: %w", err)}
		}
		return ExportDoneMsg{Path: path}
	}
}

// expireToastCmd fires ToastExpiredMsg for id after the toast timeout.
func expireToastCmd(id int) tea.Cmd {
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
