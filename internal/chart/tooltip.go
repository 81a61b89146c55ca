package chart

// TooltipEntry is one line of a tooltip.
type TooltipEntry struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Variant   Variant `json:"variant"`
}

// Tooltip is the payload shown when a category or slice is hovered or focused.
type Tooltip struct {
	Label   string         `json:"label"`
	Detail  string         `json:"detail,omitempty"`
	Entries []TooltipEntry `json:"entries"`
}

// BarTooltip builds the tooltip for a normalized point. Non-positive bars are
// left out; ok is false when nothing remains.
func BarTooltip(point NormalizedPoint, series []GroupMeta, format ValueFormatter) (Tooltip, bool) {
	format = format.orDefault()

	var entries []TooltipEntry
	for _, bar := range point.Bars {
		if !(bar.Value > 0) {
			continue
		}
		entry := TooltipEntry{
			ID:        bar.ID,
			Label:     bar.ID,
			Value:     bar.Value,
			Formatted: format(bar.Value),
			Variant:   VariantPrimary,
		}
		if meta, ok := SeriesByID(series, bar.ID); ok {
			if meta.Label != "" {
				entry.Label = meta.Label
			}
			entry.Variant = meta.Variant.OrDefault()
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return Tooltip{}, false
	}
	return Tooltip{Label: point.Label, Detail: point.Detail, Entries: entries}, true
}

// PieTooltip builds the tooltip for a slice; ok is false for non-positive slices.
func PieTooltip(slice NormalizedSlice, format ValueFormatter) (Tooltip, bool) {
	if !(slice.Value > 0) {
		return Tooltip{}, false
	}
	format = format.orDefault()
	return Tooltip{
		Label:  slice.Label,
		Detail: slice.Detail,
		Entries: []TooltipEntry{{
			ID:        slice.ID,
			Label:     slice.Label,
			Value:     slice.Value,
			Formatted: format(slice.Value),
			Variant:   slice.Variant.OrDefault(),
		}},
	}, true
}
