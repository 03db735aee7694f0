// Package curve renders sweep samples as an image: measured solve time per
// number of items, next to the algorithm's scaled reference curve.
//
// Rendering uses gonum.org/v1/plot; the output format follows the file
// extension of Options.Path (.png, .svg, .pdf, ...).
package curve

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvknap/bench"
)

// DefaultTitle is the caption used when Options.Title is empty.
const DefaultTitle = "Temps d'exécution / nombre d'actions"

var (
	// ErrNoPoints is returned when there is nothing to draw.
	ErrNoPoints = errors.New("curve: no points")

	// ErrNoPath is returned when Options.Path is empty.
	ErrNoPath = errors.New("curve: empty output path")
)

// Options controls the rendered image.
type Options struct {
	Title string
	Path  string

	// Width and Height in points; zero means 600×400.
	Width  vg.Length
	Height vg.Length
}

var (
	measuredColor  = color.RGBA{R: 220, A: 255}
	referenceColor = color.RGBA{B: 220, A: 255}
)

// Render draws points to o.Path. Durations are shown in microseconds; the
// y axis stops a little above the slowest measured sample so an exploding
// reference curve does not flatten the measurements.
func Render(points []bench.Point, o Options) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if o.Path == "" {
		return ErrNoPath
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width == 0 {
		o.Width = 600
	}
	if o.Height == 0 {
		o.Height = 400
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "items"
	p.Y.Label.Text = "µs"
	p.Add(plotter.NewGrid())

	measured, reference := series(points)
	ml, err := plotter.NewLine(measured)
	if err != nil {
		return fmt.Errorf("curve: measured line: %w", err)
	}
	ml.Color = measuredColor
	rl, err := plotter.NewLine(reference)
	if err != nil {
		return fmt.Errorf("curve: reference line: %w", err)
	}
	rl.Color = referenceColor
	rl.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(ml, rl)
	p.Legend.Add("measured", ml)
	p.Legend.Add("reference", rl)
	p.Legend.Top = true
	p.Legend.Left = true

	p.Y.Min = 0
	p.Y.Max = maxY(measured) * 1.1

	if err := p.Save(o.Width, o.Height, o.Path); err != nil {
		return fmt.Errorf("curve: save %s: %w", o.Path, err)
	}

	return nil
}

func series(points []bench.Point) (measured, reference plotter.XYs) {
	measured = make(plotter.XYs, len(points))
	reference = make(plotter.XYs, len(points))
	for i, pt := range points {
		x := float64(pt.Size)
		measured[i].X, measured[i].Y = x, micros(pt.Duration)
		reference[i].X, reference[i].Y = x, micros(pt.Reference)
	}

	return measured, reference
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

func maxY(xys plotter.XYs) float64 {
	m := 1.0
	for _, v := range xys {
		if v.Y > m {
			m = v.Y
		}
	}

	return m
}
