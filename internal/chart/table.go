package chart

// TableSeparator joins a category label and a series label in bar table terms.
const TableSeparator = " – "

// TableRow is one term/description pair of the accessible data table.
type TableRow struct {
	Term        string `json:"term"`
	Description string `json:"description"`
}

// LegendEntry is one pie legend item.
type LegendEntry struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Variant   Variant `json:"variant"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// BarTable lists every point against every bar, including zero and negative values.
func BarTable(points []NormalizedPoint, series []GroupMeta, format ValueFormatter) []TableRow {
	format = format.orDefault()
	var rows []TableRow
	for _, p := range points {
		for _, bar := range p.Bars {
			label := bar.ID
			if meta, ok := SeriesByID(series, bar.ID); ok && meta.Label != "" {
				label = meta.Label
			}
			rows = append(rows, TableRow{
				Term:        p.Label + TableSeparator + label,
				Description: format(bar.Value),
			})
		}
	}
	return rows
}

// PieTable lists every slice with its literal value, followed by the total.
func PieTable(slices []NormalizedSlice, total float64, format ValueFormatter) []TableRow {
	if len(slices) == 0 {
		return nil
	}
	format = format.orDefault()
	rows := make([]TableRow, 0, len(slices)+1)
	for _, s := range slices {
		rows = append(rows, TableRow{Term: s.Label, Description: format(s.Value)})
	}
	rows = append(rows, TableRow{Term: "Total", Description: format(total)})
	return rows
}

// PieLegend lists every slice with its swatch variant and formatted value.
func PieLegend(slices []NormalizedSlice, format ValueFormatter) []LegendEntry {
	format = format.orDefault()
	entries := make([]LegendEntry, 0, len(slices))
	for _, s := range slices {
		entries = append(entries, LegendEntry{
			ID:        s.ID,
			Label:     s.Label,
			Variant:   s.Variant,
			Value:     s.Value,
			Formatted: format(s.Value),
		})
	}
	return entries
}
