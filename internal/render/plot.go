// Package render writes intensity curves as static PNG plots and
// interactive HTML charts.
package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveCurvePNG writes a line plot of one intensity curve.
func SaveCurvePNG(path, title string, q, intensity []float64) error {
	if len(q) != len(intensity) {
		return fmt.Errorf("mismatched curve lengths: %d q samples, %d intensities", len(q), len(intensity))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "q (1/Å)"
	p.Y.Label.Text = "I(q)"

	pts := make(plotter.XYs, len(q))
	for i := range q {
		pts[i] = plotter.XY{X: q[i], Y: intensity[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build curve line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	if len(intensity) > 0 {
		if top := floats.Max(intensity); top > 0 {
			p.Y.Max = 1.05 * top
		}
	}

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
