package tui

import (
	"github.com/alexisbeaulieu97/chartkit/internal/ui"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

// View renders the inspector.
func (m Model) View() string {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithWidth(m.width)

	root := components.VStack(m.chartView(), m.tooltipView()).
		WithGap(1)
	if m.toast != nil {
		root.Add(m.toast)
	}
	root.Add(rawView(m.help.View(m.keys)))

	return root.ViewWithContext(ctx)
}

func (m Model) chartView() ui.Renderable {
	if m.isPie {
		return components.NewPieChart(m.pie).WithFocus(m.cursor).WithTable(m.showTable)
	}
	return components.NewBarChart(m.bar).WithFocus(m.cursor).WithTable(m.showTable)
}

func (m Model) tooltipView() ui.Renderable {
	tip, ok := m.tooltip()
	if !ok {
		return rawView("")
	}
	return components.NewTooltip(tip)
}

type rawView string

func (r rawView) View() string { return string(r) }
