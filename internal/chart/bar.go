package chart

import "errors"

// ErrMixedPointShapes reports a point set that mixes simple and grouped points.
// Normalization still accepts such input and treats it as simple data.
var ErrMixedPointShapes = errors.New("chart: points mix simple and grouped shapes")

// DefaultSeries is the identity used for simple data when the caller supplies no metadata.
var DefaultSeries = GroupMeta{ID: "default", Label: "Value", Variant: VariantPrimary}

// GroupMeta describes one stacked series. Variant may be unset on input; it is
// always set on the values returned by ResolveGroups.
type GroupMeta struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Variant   Variant `json:"variant"`
	TintIndex int     `json:"tintIndex"`
}

// Bar is one resolved segment of a normalized point.
type Bar struct {
	ID        string  `json:"id"`
	Value     float64 `json:"value"`
	Detail    string  `json:"detail,omitempty"`
	Variant   Variant `json:"variant"`
	TintIndex int     `json:"tintIndex"`
}

// NormalizedPoint is a category with one bar per resolved series, in series order.
type NormalizedPoint struct {
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
	Bars   []Bar  `json:"bars"`
}

// IsGrouped reports whether points is non-empty and every point is grouped.
func IsGrouped(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points {
		if !present(p) || p.Kind() != PointGrouped {
			return false
		}
	}
	return true
}

// ValidatePoints returns ErrMixedPointShapes when points contains both shapes.
func ValidatePoints(points []Point) error {
	var simple, grouped bool
	for _, p := range points {
		if !present(p) {
			continue
		}
		switch p.Kind() {
		case PointSimple:
			simple = true
		case PointGrouped:
			grouped = true
		}
	}
	if simple && grouped {
		return ErrMixedPointShapes
	}
	return nil
}

// GroupOrder returns the distinct group ids of grouped data in first-seen order.
// It returns nil for simple or mixed data.
func GroupOrder(points []Point) []string {
	if !IsGrouped(points) {
		return nil
	}
	seen := make(map[string]struct{})
	var order []string
	for _, p := range points {
		for _, g := range p.pointGroups() {
			if _, ok := seen[g.ID]; ok {
				continue
			}
			seen[g.ID] = struct{}{}
			order = append(order, g.ID)
		}
	}
	return order
}

// ResolveGroups derives the series that every point is normalized against.
//
// Grouped data yields one series per distinct group id in first-seen order.
// Provided metadata wins for label, variant and tint; otherwise the label is the
// id and the variant follows VariantCycle by position. Simple data yields a single
// series: the first provided entry, or DefaultSeries. Empty data yields no series.
func ResolveGroups(points []Point, provided []GroupMeta) []GroupMeta {
	if len(points) == 0 {
		return nil
	}

	if !IsGrouped(points) {
		if len(provided) == 0 {
			return []GroupMeta{DefaultSeries}
		}
		first := provided[0]
		first.Variant = first.Variant.OrDefault()
		if first.ID == "" {
			first.ID = DefaultSeries.ID
		}
		return []GroupMeta{first}
	}

	byID := make(map[string]GroupMeta, len(provided))
	for _, meta := range provided {
		if _, dup := byID[meta.ID]; !dup {
			byID[meta.ID] = meta
		}
	}

	order := GroupOrder(points)
	resolved := make([]GroupMeta, 0, len(order))
	for i, id := range order {
		series := GroupMeta{ID: id, Label: id, Variant: CycleVariant(i)}
		if meta, ok := byID[id]; ok {
			if meta.Label != "" {
				series.Label = meta.Label
			}
			series.Variant = meta.Variant.Or(series.Variant)
			series.TintIndex = meta.TintIndex
		}
		resolved = append(resolved, series)
	}
	return resolved
}

// NormalizeBars converts points into renderer-ready categories against series.
// Values are copied verbatim; groups missing from a point become zero-valued bars
// carrying the point's detail.
func NormalizeBars(points []Point, series []GroupMeta) []NormalizedPoint {
	if len(points) == 0 {
		return nil
	}

	normalized := make([]NormalizedPoint, 0, len(points))

	if !IsGrouped(points) {
		single := DefaultSeries
		if len(series) > 0 {
			single = series[0]
		}
		for _, p := range points {
			if !present(p) {
				continue
			}
			bar := Bar{
				ID:        single.ID,
				Value:     p.pointValue(),
				Detail:    p.PointDetail(),
				Variant:   single.Variant.OrDefault(),
				TintIndex: single.TintIndex,
			}
			normalized = append(normalized, NormalizedPoint{
				Label:  p.PointLabel(),
				Detail: p.PointDetail(),
				Bars:   []Bar{bar},
			})
		}
		return normalized
	}

	for _, p := range points {
		groups := p.pointGroups()
		bars := make([]Bar, 0, len(series))
		for _, s := range series {
			bar := Bar{
				ID:        s.ID,
				Detail:    p.PointDetail(),
				Variant:   s.Variant.OrDefault(),
				TintIndex: s.TintIndex,
			}
			if match, ok := findGroup(groups, s.ID); ok {
				bar.Value = match.Value
				if match.Detail != "" {
					bar.Detail = match.Detail
				}
			}
			bars = append(bars, bar)
		}
		normalized = append(normalized, NormalizedPoint{
			Label:  p.PointLabel(),
			Detail: p.PointDetail(),
			Bars:   bars,
		})
	}
	return normalized
}

// SeriesByID returns the series with the given id.
func SeriesByID(series []GroupMeta, id string) (GroupMeta, bool) {
	for _, s := range series {
		if s.ID == id {
			return s, true
		}
	}
	return GroupMeta{}, false
}
