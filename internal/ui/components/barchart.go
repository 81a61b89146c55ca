package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

const (
	barGlyph     = "█"
	minPlotWidth = 10
)

// BarChart draws a normalized bar chart as horizontal stacked bars, one row
// per category. Segment widths are proportional to the tallest positive stack.
type BarChart struct {
	BaseComponent
	model     chart.BarChartModel
	focus     int
	showTable bool
}

// NewBarChart creates a bar chart component over model.
func NewBarChart(model chart.BarChartModel) *BarChart {
	return &BarChart{BaseComponent: NewBaseComponent(), model: model, focus: -1}
}

// WithFocus marks the category at index. Negative values clear the mark.
func (b *BarChart) WithFocus(index int) *BarChart {
	b.focus = index
	return b
}

// WithTable appends the accessible data table below the chart.
func (b *BarChart) WithTable(show bool) *BarChart {
	b.showTable = show
	return b
}

// View renders the chart with the default context.
func (b *BarChart) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chart. Empty models render nothing.
func (b *BarChart) ViewWithContext(ctx RenderContext) string {
	m := b.model
	if m.Empty() {
		return ""
	}
	theme := ctx.Theme
	width := ctx.AvailableWidth()

	totals := make([]string, len(m.Points))
	labelWidth, totalWidth := 0, 0
	for i, p := range m.Points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		totals[i] = m.Format(positiveSum(p.Bars))
		totalWidth = max(totalWidth, lipgloss.Width(totals[i]))
	}
	labelWidth = min(labelWidth, max(width/4, 1))

	// marker + label + " │" + plot + " " + total
	plotWidth := max(width-2-labelWidth-2-1-totalWidth, minPlotWidth)
	values := make([][]float64, len(m.Points))
	for i, p := range m.Points {
		values[i] = make([]float64, len(p.Bars))
		for j, bar := range p.Bars {
			values[i][j] = bar.Value
		}
	}
	values, scale := FitScale(values)
	caption := TypographyStyle(theme, TypographyVariantCaption)

	rows := make([]string, 0, len(m.Points)+3)
	if m.YAxisLabel != "" {
		rows = append(rows, caption.Render(m.YAxisLabel))
	}
	for i, p := range m.Points {
		row := focusMarker(i == b.focus) + padRight(p.Label, labelWidth) + " │" +
			b.stack(theme, p.Bars, values[i], scale, plotWidth) + " " + totals[i]
		rows = append(rows, row)
	}
	indent := strings.Repeat(" ", 2+labelWidth+1)
	rows = append(rows, caption.Render(indent+"└"+strings.Repeat("─", plotWidth)))
	if m.XAxisLabel != "" {
		rows = append(rows, indent+" "+caption.Render(centre(m.XAxisLabel, plotWidth)))
	}

	plot := lipgloss.JoinVertical(lipgloss.Left, rows...)
	body := VStack(
		NewHeader(m.AriaLabel),
		rawView(plot),
		NewLegend(SeriesLegend(m.Series)...),
	).WithGap(1)
	if b.showTable {
		body.Add(NewDataTable(m.Table).WithCaption("Data"))
	}
	return b.ComputeStyle(theme).Render(body.ViewWithContext(ctx))
}

// stack renders the coloured segments of one category padded to plotWidth.
func (b *BarChart) stack(theme Theme, bars []chart.Bar, values []float64, scale float64, plotWidth int) string {
	widths := SegmentWidths(values, scale, plotWidth)

	var sb strings.Builder
	used := 0
	for i, bar := range bars {
		if widths[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(VariantShade(theme, bar.Variant, bar.TintIndex))
		sb.WriteString(style.Render(strings.Repeat(barGlyph, widths[i])))
		used += widths[i]
	}
	sb.WriteString(strings.Repeat(" ", plotWidth-used))
	return sb.String()
}

// SegmentWidths splits cells among positive values in proportion to scale.
// Cumulative rounding keeps the sum of widths equal to the rounded stack.
// Non-positive values get zero width. With an infinite scale only infinite
// values get cells.
func SegmentWidths(values []float64, scale float64, cells int) []int {
	widths := make([]int, len(values))
	if !(scale > 0) || cells <= 0 {
		return widths
	}
	var share float64
	prev := 0
	for i, v := range values {
		if !(v > 0) {
			continue
		}
		share = math.Min(share+segmentRatio(v, scale), 1)
		edge := int(math.Round(share * float64(cells)))
		widths[i] = max(edge-prev, 0)
		prev = max(prev, edge)
	}
	return widths
}

// segmentRatio is v/scale clamped to [0, 1].
func segmentRatio(v, scale float64) float64 {
	if math.IsInf(scale, 1) {
		if math.IsInf(v, 1) {
			return 1
		}
		return 0
	}
	r := v / scale
	if math.IsNaN(r) || r > 1 {
		return 1
	}
	return r
}

// FitScale returns rows and the largest positive stack among them. When the
// stacks overflow float64, finite values are divided by the largest finite
// positive value first so that proportions survive.
func FitScale(rows [][]float64) ([][]float64, float64) {
	scale := maxStack(rows)
	if !math.IsInf(scale, 1) {
		return rows, scale
	}

	var largest float64
	for _, row := range rows {
		for _, v := range row {
			if v > largest && !math.IsInf(v, 1) {
				largest = v
			}
		}
	}
	if largest == 0 {
		return rows, scale
	}

	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		scaled[i] = make([]float64, len(row))
		for j, v := range row {
			scaled[i][j] = v / largest
		}
	}
	return scaled, maxStack(scaled)
}

func maxStack(rows [][]float64) float64 {
	var best float64
	for _, row := range rows {
		var sum float64
		for _, v := range row {
			if v > 0 {
				sum += v
			}
		}
		best = math.Max(best, sum)
	}
	return best
}

func positiveSum(bars []chart.Bar) float64 {
	var sum float64
	for _, bar := range bars {
		sum += math.Max(0, bar.Value)
	}
	return sum
}

func centre(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// rawView adapts pre-rendered text to ui.Renderable.
type rawView string

func (r rawView) View() string { return string(r) }
