// Package chart renders a sampled shot to a raster chart with
// gonum/plot, for when a quick PNG beats an animated SVG.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// Renderer writes the arc to an image file. The format follows the
// path extension (png, pdf, svg, ...), as gonum/plot resolves it.
type Renderer struct {
	Path   string
	Width  vg.Length // zero defaults to 8 inches
	Height vg.Length // zero defaults to 5 inches
}

// Render implements the renderer contract.
func (r Renderer) Render(traj trajectory.Trajectory, target trajectory.Target, hit trajectory.HitResult) error {
	p := plot.New()
	p.Title.Text = title(hit)
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(traj))
	for i, s := range traj {
		xys[i].X = s.Pos.X
		xys[i].Y = s.Pos.Y
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("failed to build trajectory series: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	points.Radius = vg.Points(1.5)
	p.Add(line, points)

	basket, err := plotter.NewScatter(plotter.XYs{{X: target.Pos.X, Y: target.Pos.Y}})
	if err != nil {
		return fmt.Errorf("failed to build basket marker: %w", err)
	}
	basket.Radius = vg.Points(5)
	basket.Color = color.RGBA{G: 180, A: 255}
	p.Add(basket)

	p.Y.Min = 0

	width, height := r.Width, r.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 5 * vg.Inch
	}
	if err := p.Save(width, height, r.Path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func title(hit trajectory.HitResult) string {
	if hit.Made {
		return fmt.Sprintf("Basket made (closest approach %.3f m at t=%.2fs)", hit.MinDistance, hit.Time)
	}
	return fmt.Sprintf("Missed (closest approach %.3f m at t=%.2fs)", hit.MinDistance, hit.Time)
}
