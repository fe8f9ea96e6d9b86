package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rustyeddy/tradejournal/journal"
)

// ErrEmptySeries is returned when there is nothing to plot.
var ErrEmptySeries = errors.New("chart: no non-zero P&L to plot")

var (
	gain = color.RGBA{G: 128, A: 255}
	loss = color.RGBA{R: 200, A: 255}
)

// Options control the rendered image. Zero values pick the defaults.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// RenderPnL draws the series as a bar chart, gains green and losses red, with
// a dashed zero line, and saves it to path. The image format follows the file
// extension (png, svg, pdf, ...).
func RenderPnL(series journal.Series, path string, opts Options) error {
	p, err := PnLPlot(series, opts.Title)
	if err != nil {
		return err
	}

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 10 * vg.Inch
	}
	if h == 0 {
		h = 5 * vg.Inch
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// PnLPlot builds the plot without saving it.
func PnLPlot(series journal.Series, title string) (*plot.Plot, error) {
	n := series.Len()
	if n == 0 {
		return nil, ErrEmptySeries
	}

	// Two overlaid bar sets so each bar can take its own colour.
	gains := make(plotter.Values, n)
	losses := make(plotter.Values, n)
	for i, v := range series.Floats() {
		if v >= 0 {
			gains[i] = v
		} else {
			losses[i] = v
		}
	}

	width := vg.Points(math.Max(4, math.Min(20, 400/float64(n))))

	gb, err := plotter.NewBarChart(gains, width)
	if err != nil {
		return nil, fmt.Errorf("gain bars: %w", err)
	}
	gb.Color = gain
	gb.LineStyle.Width = 0

	lb, err := plotter.NewBarChart(losses, width)
	if err != nil {
		return nil, fmt.Errorf("loss bars: %w", err)
	}
	lb.Color = loss
	lb.LineStyle.Width = 0

	zero, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: float64(n) - 0.5, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("zero line: %w", err)
	}
	zero.LineStyle.Color = color.RGBA{R: 255, A: 255}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = journal.Currency
	p.Add(gb, lb, zero)
	p.NominalX(series.Labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
