package config

import (
	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/format"
)

// Spec converts the document format block into a format.Spec.
func (f *FormatSpec) Spec() format.Spec {
	if f == nil {
		return format.Spec{}
	}
	return format.Spec{
		Style:     format.Style(f.Style),
		Precision: f.Precision,
		Prefix:    f.Prefix,
		Suffix:    f.Suffix,
		Locale:    f.Locale,
	}
}

// Title returns the chart's accessible label.
func (c Chart) Title() string {
	return c.AriaLabel
}

// ChartPoints converts the document points into chart points, preserving order.
func (c Chart) ChartPoints() []chart.Point {
	if len(c.Points) == 0 {
		return nil
	}
	points := make([]chart.Point, 0, len(c.Points))
	for _, p := range c.Points {
		if p.Kind == PointKindGrouped {
			groups := make([]chart.GroupValue, 0, len(p.Groups))
			for _, g := range p.Groups {
				groups = append(groups, chart.GroupValue{ID: g.ID, Value: g.Value, Detail: g.Detail})
			}
			points = append(points, chart.GroupedPoint{Label: p.Label, Detail: p.Detail, Groups: groups})
			continue
		}
		points = append(points, chart.SimplePoint{Label: p.Label, Value: p.Value, Detail: p.Detail})
	}
	return points
}

// BarProps builds the bar chart input. The chart must have passed validation.
func (c Chart) BarProps() (chart.BarChartProps, error) {
	spec := c.Format.Spec()
	formatter, err := spec.Formatter()
	if err != nil {
		return chart.BarChartProps{}, err
	}

	groups := make([]chart.GroupMeta, 0, len(c.Groups))
	for _, g := range c.Groups {
		groups = append(groups, chart.GroupMeta{
			ID:        g.ID,
			Label:     g.Label,
			Variant:   variantOrUnset(g.Variant),
			TintIndex: g.TintIndex,
		})
	}

	return chart.BarChartProps{
		Data:         c.ChartPoints(),
		Groups:       groups,
		AriaLabel:    c.AriaLabel,
		XAxisLabel:   c.XAxisLabel,
		YAxisLabel:   c.YAxisLabel,
		Formatter:    formatter,
		FormatterKey: spec.Key(),
	}, nil
}

// PieProps builds the pie chart input. The chart must have passed validation.
func (c Chart) PieProps() (chart.PieChartProps, error) {
	spec := c.Format.Spec()
	formatter, err := spec.Formatter()
	if err != nil {
		return chart.PieChartProps{}, err
	}

	slices := make([]chart.Slice, 0, len(c.Slices))
	for _, s := range c.Slices {
		slices = append(slices, chart.Slice{
			ID:      s.ID,
			Label:   s.Label,
			Value:   s.Value,
			Detail:  s.Detail,
			Variant: variantOrUnset(s.Variant),
		})
	}

	props := chart.PieChartProps{
		Data:         slices,
		AriaLabel:    c.AriaLabel,
		Formatter:    formatter,
		FormatterKey: spec.Key(),
	}
	if c.CenterLabel != nil {
		props.CenterLabel = &chart.CenterLabel{Value: c.CenterLabel.Value, Description: c.CenterLabel.Description}
	}
	return props, nil
}

// variantOrUnset keeps an absent variant unset so resolution can apply the cycle.
func variantOrUnset(name string) chart.Variant {
	if name == "" {
		return chart.VariantUnset
	}
	return chart.ParseVariant(name)
}
