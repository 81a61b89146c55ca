package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlicesAssignsCycleVariants(t *testing.T) {
	slices := NormalizeSlices([]Slice{
		{ID: "a", Label: "A", Value: 1},
		{ID: "b", Label: "B", Value: 1, Variant: VariantNeutral},
		{ID: "c", Label: "C", Value: 1},
	})

	require.Len(t, slices, 3)
	assert.Equal(t, VariantPrimary, slices[0].Variant)
	assert.Equal(t, VariantNeutral, slices[1].Variant)
	assert.Equal(t, VariantSuccess, slices[2].Variant)
}

func TestPieTotalFloorsNegatives(t *testing.T) {
	model := BuildPieChart(PieChartProps{Data: []Slice{
		{ID: "a", Label: "A", Value: 5},
		{ID: "b", Label: "B", Value: -3},
		{ID: "c", Label: "C", Value: 2},
	}})

	assert.Equal(t, 7.0, model.Total)
	assert.Equal(t, CenterLabel{Value: "7", Description: "Total"}, model.Center)
	assert.Equal(t, []TableRow{
		{Term: "A", Description: "5"},
		{Term: "B", Description: "-3"},
		{Term: "C", Description: "2"},
		{Term: "Total", Description: "7"},
	}, model.Table)
	assert.Equal(t, "-3", model.Legend[1].Formatted)
	assert.InDelta(t, 5.0/7.0, model.Share(0), 1e-9)
	assert.Equal(t, 0.0, model.Share(1))
}

func TestPieZeroSliceHiddenFromTooltipButListed(t *testing.T) {
	model := BuildPieChart(PieChartProps{Data: []Slice{
		{ID: "zero", Label: "Zero", Value: 0},
		{ID: "one", Label: "One", Value: 1, Detail: "only one"},
	}})

	_, ok := model.Tooltip(0)
	assert.False(t, ok)
	assert.Equal(t, TableRow{Term: "Zero", Description: "0"}, model.Table[0])

	tip, ok := model.Tooltip(1)
	require.True(t, ok)
	assert.Equal(t, "only one", tip.Detail)
	assert.Equal(t, "1", tip.Entries[0].Formatted)
}

func TestPieCenterLabelOverride(t *testing.T) {
	model := BuildPieChart(PieChartProps{
		Data:        []Slice{{ID: "a", Label: "A", Value: 3}},
		CenterLabel: &CenterLabel{Value: "3 jobs"},
	})
	assert.Equal(t, CenterLabel{Value: "3 jobs"}, model.Center)
}

func TestBuildPieChartEmpty(t *testing.T) {
	model := BuildPieChart(PieChartProps{AriaLabel: "Nothing"})
	assert.True(t, model.Empty())
	assert.Empty(t, model.Table)
	assert.Empty(t, model.Legend)
	assert.Equal(t, CenterLabel{}, model.Center)
}

func TestDefaultFormatter(t *testing.T) {
	assert.Equal(t, "0", DefaultFormatter(0))
	assert.Equal(t, "0", DefaultFormatter(-0.0))
	assert.Equal(t, "1.5", DefaultFormatter(1.5))
	assert.Equal(t, "-3", DefaultFormatter(-3))
	assert.Equal(t, "1200000", DefaultFormatter(1.2e6))
}
