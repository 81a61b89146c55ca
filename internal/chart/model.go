package chart

import (
	"math"
	"slices"
)

// BarChartProps is the caller-facing input of a bar chart.
type BarChartProps struct {
	Data       []Point
	Groups     []GroupMeta
	AriaLabel  string
	XAxisLabel string
	YAxisLabel string
	Formatter  ValueFormatter
	// FormatterKey identifies Formatter for cache lookups; functions cannot be hashed.
	FormatterKey string
}

// BarChartModel is the normalized view-model of a bar chart.
type BarChartModel struct {
	AriaLabel  string            `json:"ariaLabel"`
	XAxisLabel string            `json:"xAxisLabel,omitempty"`
	YAxisLabel string            `json:"yAxisLabel,omitempty"`
	Grouped    bool              `json:"grouped"`
	Series     []GroupMeta       `json:"series"`
	Points     []NormalizedPoint `json:"points"`
	Table      []TableRow        `json:"table"`
	Formatter  ValueFormatter    `json:"-"`
}

// BuildBarChart resolves, normalizes and projects props into a BarChartModel.
func BuildBarChart(props BarChartProps) BarChartModel {
	format := props.Formatter.orDefault()
	series := ResolveGroups(props.Data, props.Groups)
	points := NormalizeBars(props.Data, series)
	return BarChartModel{
		AriaLabel:  props.AriaLabel,
		XAxisLabel: props.XAxisLabel,
		YAxisLabel: props.YAxisLabel,
		Grouped:    IsGrouped(props.Data),
		Series:     series,
		Points:     points,
		Table:      BarTable(points, series, format),
		Formatter:  format,
	}
}

// Empty reports whether there is nothing to render.
func (m BarChartModel) Empty() bool {
	return len(m.Points) == 0 || len(m.Series) == 0
}

// Format renders value with the model's formatter.
func (m BarChartModel) Format(value float64) string {
	return m.Formatter.orDefault()(value)
}

// Tooltip returns the tooltip for the point at index.
func (m BarChartModel) Tooltip(index int) (Tooltip, bool) {
	if index < 0 || index >= len(m.Points) {
		return Tooltip{}, false
	}
	return BarTooltip(m.Points[index], m.Series, m.Formatter)
}

// MaxStack returns the tallest stack of positive values across all points.
func (m BarChartModel) MaxStack() float64 {
	var best float64
	for _, p := range m.Points {
		var sum float64
		for _, b := range p.Bars {
			sum += math.Max(0, b.Value)
		}
		best = math.Max(best, sum)
	}
	return best
}

func (m BarChartModel) clone() BarChartModel {
	m.Series = slices.Clone(m.Series)
	m.Table = slices.Clone(m.Table)
	m.Points = slices.Clone(m.Points)
	for i := range m.Points {
		m.Points[i].Bars = slices.Clone(m.Points[i].Bars)
	}
	return m
}

// PieChartProps is the caller-facing input of a pie chart.
type PieChartProps struct {
	Data         []Slice
	AriaLabel    string
	Formatter    ValueFormatter
	FormatterKey string
	CenterLabel  *CenterLabel
}

// PieChartModel is the normalized view-model of a pie chart.
type PieChartModel struct {
	AriaLabel string            `json:"ariaLabel"`
	Slices    []NormalizedSlice `json:"slices"`
	Total     float64           `json:"total"`
	Center    CenterLabel       `json:"center"`
	Legend    []LegendEntry     `json:"legend"`
	Table     []TableRow        `json:"table"`
	Formatter ValueFormatter    `json:"-"`
}

// BuildPieChart normalizes props into a PieChartModel.
func BuildPieChart(props PieChartProps) PieChartModel {
	format := props.Formatter.orDefault()
	normalized := NormalizeSlices(props.Data)
	total := Total(normalized)
	model := PieChartModel{
		AriaLabel: props.AriaLabel,
		Slices:    normalized,
		Total:     total,
		Formatter: format,
	}
	if len(normalized) == 0 {
		return model
	}
	model.Center = ResolveCenterLabel(props.CenterLabel, total, format)
	model.Legend = PieLegend(normalized, format)
	model.Table = PieTable(normalized, total, format)
	return model
}

// Empty reports whether there is nothing to render.
func (m PieChartModel) Empty() bool {
	return len(m.Slices) == 0
}

// Format renders value with the model's formatter.
func (m PieChartModel) Format(value float64) string {
	return m.Formatter.orDefault()(value)
}

// Share returns the proportion of the total held by the slice at index.
func (m PieChartModel) Share(index int) float64 {
	if index < 0 || index >= len(m.Slices) {
		return 0
	}
	return Share(m.Slices[index].Value, m.Total)
}

// Tooltip returns the tooltip for the slice at index.
func (m PieChartModel) Tooltip(index int) (Tooltip, bool) {
	if index < 0 || index >= len(m.Slices) {
		return Tooltip{}, false
	}
	return PieTooltip(m.Slices[index], m.Formatter)
}

func (m PieChartModel) clone() PieChartModel {
	m.Slices = slices.Clone(m.Slices)
	m.Legend = slices.Clone(m.Legend)
	m.Table = slices.Clone(m.Table)
	return m
}
