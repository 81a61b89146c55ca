package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekData() []Point {
	return []Point{
		GroupedPoint{Label: "Mon", Detail: "start", Groups: []GroupValue{
			{ID: "b", Value: 2},
			{ID: "a", Value: 3, Detail: "a on mon"},
		}},
		GroupedPoint{Label: "Tue", Detail: "tue detail", Groups: []GroupValue{
			{ID: "a", Value: 4},
		}},
	}
}

func TestIsGrouped(t *testing.T) {
	assert.False(t, IsGrouped(nil))
	assert.True(t, IsGrouped(weekData()))
	assert.False(t, IsGrouped([]Point{SimplePoint{Label: "x", Value: 1}}))

	mixed := []Point{
		GroupedPoint{Label: "Mon", Groups: []GroupValue{{ID: "a", Value: 1}}},
		SimplePoint{Label: "Tue", Value: 2},
	}
	assert.False(t, IsGrouped(mixed))
	assert.ErrorIs(t, ValidatePoints(mixed), ErrMixedPointShapes)
	assert.NoError(t, ValidatePoints(weekData()))
}

func TestResolveGroupsFirstSeenOrder(t *testing.T) {
	series := ResolveGroups(weekData(), nil)

	require.Len(t, series, 2)
	assert.Equal(t, "b", series[0].ID)
	assert.Equal(t, "a", series[1].ID)
	assert.Equal(t, "b", series[0].Label)
	assert.Equal(t, VariantPrimary, series[0].Variant)
	assert.Equal(t, VariantAccent, series[1].Variant)
}

func TestResolveGroupsProvidedMetadataWins(t *testing.T) {
	provided := []GroupMeta{
		{ID: "a", Label: "Alpha", Variant: VariantWarning, TintIndex: 2},
		{ID: "b", Label: "Beta"},
		{ID: "unused", Label: "Unused", Variant: VariantNeutral},
	}

	series := ResolveGroups(weekData(), provided)

	require.Len(t, series, 2)
	assert.Equal(t, GroupMeta{ID: "b", Label: "Beta", Variant: VariantPrimary}, series[0])
	assert.Equal(t, GroupMeta{ID: "a", Label: "Alpha", Variant: VariantWarning, TintIndex: 2}, series[1])
}

func TestResolveGroupsSeventhGroupWraps(t *testing.T) {
	groups := make([]GroupValue, 7)
	for i := range groups {
		groups[i] = GroupValue{ID: fmt.Sprintf("g%d", i), Value: 1}
	}

	series := ResolveGroups([]Point{GroupedPoint{Label: "all", Groups: groups}}, nil)

	require.Len(t, series, 7)
	assert.Equal(t, series[0].Variant, series[6].Variant)
	seen := map[Variant]bool{}
	for _, s := range series[:6] {
		assert.False(t, seen[s.Variant], "variant %s reused before the cycle was exhausted", s.Variant)
		seen[s.Variant] = true
	}
}

func TestResolveGroupsSimpleMode(t *testing.T) {
	data := []Point{SimplePoint{Label: "Mon", Value: 1}}

	assert.Equal(t, []GroupMeta{DefaultSeries}, ResolveGroups(data, nil))

	series := ResolveGroups(data, []GroupMeta{{ID: "jobs", Label: "Jobs"}, {ID: "other"}})
	assert.Equal(t, []GroupMeta{{ID: "jobs", Label: "Jobs", Variant: VariantPrimary}}, series)
}

func TestResolveGroupsEmptyData(t *testing.T) {
	assert.Empty(t, ResolveGroups(nil, []GroupMeta{{ID: "x"}}))
	assert.Empty(t, NormalizeBars(nil, nil))
}

func TestNormalizeBarsZeroFillsMissingGroups(t *testing.T) {
	data := weekData()
	points := NormalizeBars(data, ResolveGroups(data, nil))

	require.Len(t, points, 2)

	mon := points[0]
	require.Len(t, mon.Bars, 2)
	assert.Equal(t, "b", mon.Bars[0].ID)
	assert.Equal(t, 2.0, mon.Bars[0].Value)
	assert.Equal(t, "start", mon.Bars[0].Detail)
	assert.Equal(t, "a", mon.Bars[1].ID)
	assert.Equal(t, "a on mon", mon.Bars[1].Detail)

	tue := points[1]
	require.Len(t, tue.Bars, 2)
	assert.Equal(t, Bar{ID: "b", Value: 0, Detail: "tue detail", Variant: VariantPrimary}, tue.Bars[0])
	assert.Equal(t, "a", tue.Bars[1].ID)
	assert.Equal(t, 4.0, tue.Bars[1].Value)
}

func TestNormalizeBarsSimpleKeepsValuesVerbatim(t *testing.T) {
	data := []Point{
		SimplePoint{Label: "Mon", Value: -2, Detail: "refunds"},
		SimplePoint{Label: "Tue", Value: 0},
	}

	points := NormalizeBars(data, ResolveGroups(data, nil))

	require.Len(t, points, 2)
	assert.Equal(t, []Bar{{ID: "default", Value: -2, Detail: "refunds", Variant: VariantPrimary}}, points[0].Bars)
	assert.Equal(t, 0.0, points[1].Bars[0].Value)
}

func TestPointerPointsNormalizeLikeValues(t *testing.T) {
	tests := []struct {
		name     string
		pointers []Point
		values   []Point
	}{
		{
			name: "grouped",
			pointers: []Point{
				&GroupedPoint{Label: "Mon", Detail: "start", Groups: []GroupValue{{ID: "b", Value: 2}, {ID: "a", Value: 3}}},
				&GroupedPoint{Label: "Tue", Groups: []GroupValue{{ID: "a", Value: 4}}},
			},
			values: []Point{
				GroupedPoint{Label: "Mon", Detail: "start", Groups: []GroupValue{{ID: "b", Value: 2}, {ID: "a", Value: 3}}},
				GroupedPoint{Label: "Tue", Groups: []GroupValue{{ID: "a", Value: 4}}},
			},
		},
		{
			name:     "simple",
			pointers: []Point{&SimplePoint{Label: "Mon", Value: 7, Detail: "d"}, &SimplePoint{Label: "Tue", Value: -1}},
			values:   []Point{SimplePoint{Label: "Mon", Value: 7, Detail: "d"}, SimplePoint{Label: "Tue", Value: -1}},
		},
		{
			name:     "mixed",
			pointers: []Point{&GroupedPoint{Label: "Mon", Groups: []GroupValue{{ID: "a", Value: 5}}}, SimplePoint{Label: "Tue", Value: 2}},
			values:   []Point{GroupedPoint{Label: "Mon", Groups: []GroupValue{{ID: "a", Value: 5}}}, SimplePoint{Label: "Tue", Value: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromPointers := BuildBarChart(BarChartProps{Data: tt.pointers, AriaLabel: "Jobs"})
			fromValues := BuildBarChart(BarChartProps{Data: tt.values, AriaLabel: "Jobs"})

			assert.Equal(t, fromValues.Grouped, fromPointers.Grouped)
			assert.Equal(t, fromValues.Series, fromPointers.Series)
			assert.Equal(t, fromValues.Points, fromPointers.Points)
			assert.Equal(t, fromValues.Table, fromPointers.Table)
		})
	}
}

func TestNilPointsAreSkipped(t *testing.T) {
	var missing *SimplePoint
	data := []Point{nil, missing, SimplePoint{Label: "Mon", Value: 3}}

	assert.NoError(t, ValidatePoints(data))
	assert.False(t, IsGrouped([]Point{missing}))

	points := NormalizeBars(data, ResolveGroups(data, nil))
	require.Len(t, points, 1)
	assert.Equal(t, 3.0, points[0].Bars[0].Value)
}

func TestNormalizeBarsMixedShapesFallBackToSimple(t *testing.T) {
	data := []Point{
		GroupedPoint{Label: "Mon", Detail: "d", Groups: []GroupValue{{ID: "a", Value: 5}}},
		SimplePoint{Label: "Tue", Value: 2},
	}

	series := ResolveGroups(data, nil)
	points := NormalizeBars(data, series)

	assert.Equal(t, []GroupMeta{DefaultSeries}, series)
	require.Len(t, points, 2)
	assert.Equal(t, 0.0, points[0].Bars[0].Value)
	assert.Equal(t, "d", points[0].Bars[0].Detail)
	assert.Equal(t, 2.0, points[1].Bars[0].Value)
}

func TestBuildBarChartIsIdempotent(t *testing.T) {
	props := BarChartProps{Data: weekData(), AriaLabel: "Jobs"}

	first := BuildBarChart(props)
	second := BuildBarChart(props)

	assert.Equal(t, first.Series, second.Series)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Table, second.Table)
}

func TestBuildBarChartEmpty(t *testing.T) {
	model := BuildBarChart(BarChartProps{AriaLabel: "Nothing"})
	assert.True(t, model.Empty())
	assert.Empty(t, model.Table)

	_, ok := model.Tooltip(0)
	assert.False(t, ok)
}

func TestBarTooltipFiltersNonPositive(t *testing.T) {
	model := BuildBarChart(BarChartProps{
		Data:      weekData(),
		Groups:    []GroupMeta{{ID: "a", Label: "Alpha"}},
		Formatter: func(v float64) string { return fmt.Sprintf("%.1f jobs", v) },
	})

	tip, ok := model.Tooltip(1)
	require.True(t, ok)
	assert.Equal(t, "Tue", tip.Label)
	assert.Equal(t, "tue detail", tip.Detail)
	require.Len(t, tip.Entries, 1)
	assert.Equal(t, "Alpha", tip.Entries[0].Label)
	assert.Equal(t, "4.0 jobs", tip.Entries[0].Formatted)

	_, ok = BarTooltip(NormalizedPoint{Label: "x", Bars: []Bar{{ID: "a", Value: 0}, {ID: "b", Value: -1}}}, nil, nil)
	assert.False(t, ok, "a tooltip with no positive entries renders nothing")
}

func TestBarTableListsEveryValue(t *testing.T) {
	model := BuildBarChart(BarChartProps{Data: weekData(), Groups: []GroupMeta{{ID: "a", Label: "Alpha"}}})

	assert.Equal(t, []TableRow{
		{Term: "Mon – b", Description: "2"},
		{Term: "Mon – Alpha", Description: "3"},
		{Term: "Tue – b", Description: "0"},
		{Term: "Tue – Alpha", Description: "4"},
	}, model.Table)
}

func TestBarChartMaxStack(t *testing.T) {
	model := BuildBarChart(BarChartProps{Data: weekData()})
	assert.Equal(t, 5.0, model.MaxStack())
}
