package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/logger"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

// Options configures the inspector.
type Options struct {
	// Chart is a chart.BarChartModel or chart.PieChartModel.
	Chart any
	// Index is the chart's position in its document, used for export file names.
	Index     int
	ExportDir string
	Theme     components.Theme
	Logger    *logger.Logger
}

// Model is the inspector's bubbletea model.
type Model struct {
	// Core data
	bar    chart.BarChartModel
	pie    chart.PieChartModel
	isPie  bool
	index  int
	outDir string
	log    *logger.Logger

	// UI state
	cursor    int
	showTable bool
	keys      keyMap
	help      help.Model
	theme     components.Theme

	// Toast state
	toast   *components.Toast
	toastID int

	// Dimensions
	width  int
	height int
}

// New creates an inspector over a built chart model.
func New(opts Options) (Model, error) {
	m := Model{
		index:  opts.Index,
		outDir: opts.ExportDir,
		log:    opts.Logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		theme:  opts.Theme,
		width:  components.DefaultWidth,
	}
	if m.outDir == "" {
		m.outDir = "."
	}
	if m.theme.Name == "" {
		m.theme = components.DefaultTheme()
	}

	switch c := opts.Chart.(type) {
	case chart.BarChartModel:
		m.bar = c
	case chart.PieChartModel:
		m.pie = c
		m.isPie = true
	default:
		return Model{}, fmt.Errorf("inspect: unsupported chart model %T", opts.Chart)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the focused category or slice index.
func (m Model) Cursor() int {
	return m.cursor
}

// ShowTable reports whether the accessible table is visible.
func (m Model) ShowTable() bool {
	return m.showTable
}

// itemCount is the number of focusable categories or slices.
func (m Model) itemCount() int {
	if m.isPie {
		return len(m.pie.Slices)
	}
	return len(m.bar.Points)
}

// MoveNext advances focus, wrapping to the first item.
func (m *Model) MoveNext() {
	n := m.itemCount()
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % n
}

// MovePrev moves focus back, wrapping to the last item.
func (m *Model) MovePrev() {
	n := m.itemCount()
	if n == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + n) % n
}

// tooltip returns the tooltip of the focused item.
func (m Model) tooltip() (chart.Tooltip, bool) {
	if m.isPie {
		return m.pie.Tooltip(m.cursor)
	}
	return m.bar.Tooltip(m.cursor)
}

func (m Model) chartModel() any {
	if m.isPie {
		return m.pie
	}
	return m.bar
}

func (m Model) ariaLabel() string {
	if m.isPie {
		return m.pie.AriaLabel
	}
	return m.bar.AriaLabel
}
