package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

func TestView_BarChart(t *testing.T) {
	m := newTestModel(t, barModel())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Jobs per day")
	assert.Contains(t, out, "▸ Mon")
	assert.Contains(t, out, "busiest day", "tooltip for the focused category")
	assert.Contains(t, out, "quit")
	assert.NotContains(t, out, "Data")

	m.MoveNext()
	out = ansi.Strip(m.View())
	assert.Contains(t, out, "▸ Tue")
	assert.NotContains(t, out, "busiest day")
}

func TestView_PieChart(t *testing.T) {
	m := newTestModel(t, pieModel())
	m.MoveNext()
	m.showTable = true

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Storage")
	assert.Contains(t, out, "▸ ")
	assert.Contains(t, out, "mostly raw")
	assert.Contains(t, out, "Data")
}

func TestView_NoTooltipForNonPositiveSlice(t *testing.T) {
	pie := chart.BuildPieChart(chart.PieChartProps{
		AriaLabel: "Balance",
		Data: []chart.Slice{
			{ID: "a", Label: "Debit", Value: -3, Detail: "owed"},
			{ID: "b", Label: "Credit", Value: 5},
		},
	})
	m := newTestModel(t, pie)

	out := ansi.Strip(m.View())
	assert.NotContains(t, out, "owed")
}

func TestView_FullHelp(t *testing.T) {
	m := newTestModel(t, barModel())
	assert.NotContains(t, ansi.Strip(m.View()), "export svg")

	m.help.ShowAll = true
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "export svg")
	assert.Contains(t, out, "toggle table")
}

func TestView_Toast(t *testing.T) {
	m := newTestModel(t, barModel())
	m.toast = components.NewToast(components.ToastSuccess, "Saved out.svg")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "✓ Saved out.svg")
}

func TestView_NarrowWindow(t *testing.T) {
	m, _ := update(t, newTestModel(t, barModel()), tea.WindowSizeMsg{Width: 40, Height: 20})

	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40, line)
	}
}
