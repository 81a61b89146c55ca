// Package render writes chart view-models as SVG documents.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

var (
	// ErrEmptyChart is returned for models with nothing to draw. Callers skip the file.
	ErrEmptyChart = errors.New("render: chart has no data")
	// ErrNoVisibleData is returned for pie charts without a positive slice.
	ErrNoVisibleData = errors.New("render: chart has no positive values")
)

// Options sizes the SVG canvas in points.
type Options struct {
	Width  float64
	Height float64
}

// DefaultOptions is used when a dimension is zero.
var DefaultOptions = Options{Width: 640, Height: 400}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	return o
}

var variantHex = map[chart.Variant]string{
	chart.VariantPrimary:   "#3b82f6",
	chart.VariantAccent:    "#8b5cf6",
	chart.VariantSuccess:   "#22c55e",
	chart.VariantWarning:   "#f59e0b",
	chart.VariantSecondary: "#14b8a6",
	chart.VariantNeutral:   "#64748b",
}

// VariantHex returns the SVG fill colour of variant, falling back to primary.
func VariantHex(v chart.Variant) string {
	return variantHex[v.OrDefault()]
}

// variantRGBA returns the fill of variant darkened 15% per tint step.
func variantRGBA(v chart.Variant, tint int) color.RGBA {
	var r, g, b uint8
	_, _ = fmt.Sscanf(VariantHex(v), "#%02x%02x%02x", &r, &g, &b)
	factor := 1.0
	for i := 0; i < tint && i < 9; i++ {
		factor *= 0.85
	}
	return color.RGBA{
		R: uint8(float64(r) * factor),
		G: uint8(float64(g) * factor),
		B: uint8(float64(b) * factor),
		A: 0xff,
	}
}

// SVG writes model, a chart.BarChartModel or chart.PieChartModel, to w.
func SVG(w io.Writer, model any, opts Options) error {
	switch m := model.(type) {
	case chart.BarChartModel:
		return BarSVG(w, m, opts)
	case chart.PieChartModel:
		return PieSVG(w, m, opts)
	default:
		return fmt.Errorf("render: unsupported model %T", model)
	}
}

// FileName returns the SVG file name for the chart at index, e.g. 01-jobs-per-day.svg.
func FileName(index int, label string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		slug = "chart"
	}
	return fmt.Sprintf("%02d-%s.svg", index+1, slug)
}
