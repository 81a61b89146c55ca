package chart

import "math"

// Slice is one wedge of a pie chart.
type Slice struct {
	ID      string
	Label   string
	Value   float64
	Detail  string
	Variant Variant
}

// NormalizedSlice is a slice with a resolved variant.
type NormalizedSlice struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Detail  string  `json:"detail,omitempty"`
	Variant Variant `json:"variant"`
}

// CenterLabel is the text shown in the middle of a pie chart.
type CenterLabel struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// NormalizeSlices resolves every slice's variant, falling back to the cycle by index.
func NormalizeSlices(slices []Slice) []NormalizedSlice {
	if len(slices) == 0 {
		return nil
	}
	out := make([]NormalizedSlice, len(slices))
	for i, s := range slices {
		out[i] = NormalizedSlice{
			ID:      s.ID,
			Label:   s.Label,
			Value:   s.Value,
			Detail:  s.Detail,
			Variant: s.Variant.Or(CycleVariant(i)),
		}
	}
	return out
}

// Total sums slice values with negatives floored at zero.
func Total(slices []NormalizedSlice) float64 {
	var sum float64
	for _, s := range slices {
		sum += math.Max(0, s.Value)
	}
	return sum
}

// Share returns the proportion of total a value represents, in [0, 1].
func Share(value, total float64) float64 {
	if total <= 0 || value <= 0 {
		return 0
	}
	return value / total
}

// ResolveCenterLabel returns override when set, else the formatted total.
func ResolveCenterLabel(override *CenterLabel, total float64, format ValueFormatter) CenterLabel {
	if override != nil {
		return *override
	}
	return CenterLabel{Value: format.orDefault()(total), Description: "Total"}
}
