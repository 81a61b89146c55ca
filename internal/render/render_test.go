package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

func barModel() chart.BarChartModel {
	return chart.BuildBarChart(chart.BarChartProps{
		AriaLabel:  "Jobs per day",
		XAxisLabel: "Day",
		YAxisLabel: "Jobs",
		Data: []chart.Point{
			chart.GroupedPoint{Label: "Mon", Groups: []chart.GroupValue{{ID: "a", Value: 3}, {ID: "b", Value: -2}}},
			chart.GroupedPoint{Label: "Tue", Groups: []chart.GroupValue{{ID: "b", Value: 4}}},
		},
	})
}

func TestBarSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, barModel(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
}

func TestBarSVGAllZero(t *testing.T) {
	model := chart.BuildBarChart(chart.BarChartProps{
		AriaLabel: "Idle",
		Data:      []chart.Point{chart.SimplePoint{Label: "Mon", Value: 0}},
	})

	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, model, Options{Width: 320, Height: 200}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestPieSVG(t *testing.T) {
	model := chart.BuildPieChart(chart.PieChartProps{
		AriaLabel: "Jobs by status",
		Data: []chart.Slice{
			{ID: "a", Label: "Done", Value: 5},
			{ID: "b", Label: "Refunded", Value: -3},
			{ID: "c", Label: "Failed", Value: 2},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, model, Options{}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestEmptyAndInvisibleCharts(t *testing.T) {
	var buf bytes.Buffer

	assert.ErrorIs(t, BarSVG(&buf, chart.BuildBarChart(chart.BarChartProps{}), Options{}), ErrEmptyChart)
	assert.ErrorIs(t, PieSVG(&buf, chart.BuildPieChart(chart.PieChartProps{}), Options{}), ErrEmptyChart)

	zero := chart.BuildPieChart(chart.PieChartProps{Data: []chart.Slice{{ID: "a", Label: "A", Value: 0}}})
	assert.ErrorIs(t, PieSVG(&buf, zero, Options{}), ErrNoVisibleData)
	assert.Zero(t, buf.Len())

	assert.ErrorContains(t, SVG(&buf, "not a chart", Options{}), "unsupported model")
}

func TestVariantHex(t *testing.T) {
	assert.Equal(t, "#3b82f6", VariantHex(chart.VariantPrimary))
	assert.Equal(t, "#3b82f6", VariantHex(chart.VariantUnset))
	assert.Equal(t, "#f59e0b", VariantHex(chart.VariantWarning))
	for _, v := range chart.VariantCycle {
		assert.NotEmpty(t, VariantHex(v), v.String())
	}
}

func TestVariantRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, variantRGBA(chart.VariantPrimary, 0))

	darker := variantRGBA(chart.VariantPrimary, 2)
	assert.Less(t, darker.B, uint8(0xf6))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		index int
		label string
		want  string
	}{
		{0, "Jobs per day", "01-jobs-per-day.svg"},
		{11, "  Revenue (USD) / week ", "12-revenue-usd-week.svg"},
		{2, "!!!", "03-chart.svg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.index, tt.label))
	}
}
