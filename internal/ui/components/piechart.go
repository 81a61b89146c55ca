package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

const emptyShareGlyph = "░"

// PieChart draws a normalized pie chart as a proportional strip, the centre
// label and a legend listing every slice with its share of the total.
type PieChart struct {
	BaseComponent
	model     chart.PieChartModel
	focus     int
	showTable bool
}

// NewPieChart creates a pie chart component over model.
func NewPieChart(model chart.PieChartModel) *PieChart {
	return &PieChart{BaseComponent: NewBaseComponent(), model: model, focus: -1}
}

// WithFocus marks the slice at index. Negative values clear the mark.
func (p *PieChart) WithFocus(index int) *PieChart {
	p.focus = index
	return p
}

// WithTable appends the accessible data table below the chart.
func (p *PieChart) WithTable(show bool) *PieChart {
	p.showTable = show
	return p
}

// View renders the chart with the default context.
func (p *PieChart) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chart. Empty models render nothing.
func (p *PieChart) ViewWithContext(ctx RenderContext) string {
	m := p.model
	if m.Empty() {
		return ""
	}
	theme := ctx.Theme
	stripWidth := max(ctx.AvailableWidth()-2, minPlotWidth)

	centre := EmphasisText(m.Center.Value).ViewWithContext(ctx)
	if m.Center.Description != "" {
		centre += " " + CaptionText(m.Center.Description).ViewWithContext(ctx)
	}

	items := PieLegendItems(m.Legend)
	for i := range items {
		if share := m.Share(i); share > 0 {
			items[i].Value += fmt.Sprintf("  (%.1f%%)", share*100)
		}
	}

	body := VStack(
		NewHeader(m.AriaLabel),
		rawView(lipgloss.JoinVertical(lipgloss.Left, "  "+p.strip(theme, stripWidth), "  "+centre)),
		NewLegend(items...).Vertical().WithFocus(p.focus),
	).WithGap(1)
	if p.showTable {
		body.Add(NewDataTable(m.Table).WithCaption("Data"))
	}
	return p.ComputeStyle(theme).Render(body.ViewWithContext(ctx))
}

// strip renders each positive slice as a run of cells proportional to its share.
func (p *PieChart) strip(theme Theme, width int) string {
	m := p.model
	if m.Total <= 0 {
		return TypographyStyle(theme, TypographyVariantCaption).Render(strings.Repeat(emptyShareGlyph, width))
	}
	values := make([]float64, len(m.Slices))
	for i, s := range m.Slices {
		values[i] = s.Value
	}
	rows, scale := FitScale([][]float64{values})
	widths := SegmentWidths(rows[0], scale, width)

	var sb strings.Builder
	for i, s := range m.Slices {
		if widths[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(VariantShade(theme, s.Variant, 0))
		sb.WriteString(style.Render(strings.Repeat(barGlyph, widths[i])))
	}
	return sb.String()
}
