package render

import (
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

// PieSVG draws the positive slices of model. Zero and negative slices stay
// out of the drawing but remain in the model's table and legend.
func PieSVG(w io.Writer, model chart.PieChartModel, opts Options) error {
	if model.Empty() {
		return ErrEmptyChart
	}
	opts = opts.withDefaults()

	values := make([]gochart.Value, 0, len(model.Slices))
	for _, s := range model.Slices {
		if !(s.Value > 0) {
			continue
		}
		values = append(values, gochart.Value{
			Value: s.Value,
			Label: s.Label,
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(VariantHex(s.Variant), "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	if len(values) == 0 {
		return ErrNoVisibleData
	}

	pie := gochart.PieChart{
		Title:  model.AriaLabel,
		Width:  int(opts.Width),
		Height: int(opts.Height),
		Values: values,
	}
	return pie.Render(gochart.SVG, w)
}
