package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/render"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, barModel())

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestUpdate_NavigationKeys(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		expect int
	}{
		{name: "right", keys: []tea.KeyMsg{{Type: tea.KeyRight}}, expect: 1},
		{name: "l", keys: []tea.KeyMsg{runes("l"), runes("l")}, expect: 2},
		{name: "left wraps", keys: []tea.KeyMsg{{Type: tea.KeyLeft}}, expect: 2},
		{name: "h after right", keys: []tea.KeyMsg{{Type: tea.KeyRight}, runes("h")}, expect: 0},
		{name: "right wraps", keys: []tea.KeyMsg{runes("l"), runes("l"), runes("l")}, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, barModel())
			for _, k := range tt.keys {
				m, _ = update(t, m, k)
			}
			assert.Equal(t, tt.expect, m.Cursor())
		})
	}
}

func TestUpdate_ToggleKeys(t *testing.T) {
	m := newTestModel(t, pieModel())

	m, _ = update(t, m, runes("t"))
	assert.True(t, m.ShowTable())
	m, _ = update(t, m, runes("t"))
	assert.False(t, m.ShowTable())

	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	m, _ = update(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, barModel())
		_, cmd := update(t, m, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_UnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t, barModel())
	next, cmd := update(t, m, runes("z"))
	assert.Nil(t, cmd)
	assert.Equal(t, m.Cursor(), next.Cursor())
}

func TestUpdate_ExportWritesSVG(t *testing.T) {
	m := newTestModel(t, barModel())
	m.index = 2

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ExportDoneMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, filepath.Join(m.outDir, "03-jobs-per-day.svg"), msg.Path)

	data, err := os.ReadFile(msg.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	m, cmd = update(t, m, msg)
	require.NotNil(t, cmd)
	require.NotNil(t, m.toast)
	assert.Equal(t, components.ToastSuccess, m.toast.Level())
	assert.Contains(t, m.toast.Message(), "03-jobs-per-day.svg")
	assert.Equal(t, 1, m.toastID)
}

func TestUpdate_ExportNothingVisible(t *testing.T) {
	pie := chart.BuildPieChart(chart.PieChartProps{
		AriaLabel: "Losses",
		Data:      []chart.Slice{{ID: "a", Label: "A", Value: -4}},
	})
	m := newTestModel(t, pie)

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	msg := cmd().(ExportDoneMsg)
	require.ErrorIs(t, msg.Err, render.ErrNoVisibleData)
	assert.NoFileExists(t, filepath.Join(m.outDir, "01-losses.svg"))

	m, _ = update(t, m, msg)
	require.NotNil(t, m.toast)
	assert.Equal(t, components.ToastWarning, m.toast.Level())
	assert.Equal(t, "Nothing to export", m.toast.Message())
}

func TestUpdate_ExportFailure(t *testing.T) {
	m := newTestModel(t, barModel())

	m, _ = update(t, m, ExportDoneMsg{Err: errors.New("disk full")})
	require.NotNil(t, m.toast)
	assert.Equal(t, components.ToastDanger, m.toast.Level())
	assert.Contains(t, m.toast.Message(), "disk full")
}

func TestUpdate_ToastExpiry(t *testing.T) {
	m := newTestModel(t, barModel())

	m, _ = update(t, m, ExportDoneMsg{Path: "a.svg"})
	m, _ = update(t, m, ExportDoneMsg{Path: "b.svg"})
	require.Equal(t, 2, m.toastID)

	m, _ = update(t, m, ToastExpiredMsg{ID: 1})
	require.NotNil(t, m.toast, "stale expiry must not dismiss a newer toast")
	assert.Contains(t, m.toast.Message(), "b.svg")

	m, _ = update(t, m, ToastExpiredMsg{ID: 2})
	assert.Nil(t, m.toast)
}
