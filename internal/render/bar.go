package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

// BarSVG draws model as stacked bars, one plotter.BarChart per series in
// canonical order. Non-positive values are drawn as zero-height segments.
func BarSVG(w io.Writer, model chart.BarChartModel, opts Options) error {
	if model.Empty() {
		return ErrEmptyChart
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = model.AriaLabel
	p.X.Label.Text = model.XAxisLabel
	p.Y.Label.Text = model.YAxisLabel
	p.Legend.Top = true

	labels := make([]string, len(model.Points))
	for i, pt := range model.Points {
		labels[i] = pt.Label
	}

	barWidth := vg.Points(math.Min(48, opts.Width*0.6/float64(len(model.Points))))

	var below *plotter.BarChart
	for si, series := range model.Series {
		values := make(plotter.Values, len(model.Points))
		for pi, pt := range model.Points {
			if si < len(pt.Bars) {
				values[pi] = math.Max(0, pt.Bars[si].Value)
			}
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("series %q: %w", series.ID, err)
		}
		bars.Color = variantRGBA(series.Variant, series.TintIndex)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}

		p.Add(bars)
		label := series.Label
		if label == "" {
			label = series.ID
		}
		p.Legend.Add(label, bars)
		below = bars
	}

	p.NominalX(labels...)
	p.Y.Min = 0
	if model.MaxStack() == 0 {
		p.Y.Max = 1
	}

	writer, err := p.WriterTo(vg.Points(opts.Width), vg.Points(opts.Height), "svg")
	if err != nil {
		return fmt.Errorf("create svg writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
