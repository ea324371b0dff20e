// pkg/render/svg/plot.go
package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// Plot renders a sampled arc as an animated SVG: one dot per sample
// (green once inside the acceptance radius, blue otherwise), the
// basket as a rectangle, the arc as a motion path, and a ball that
// rides the path on repeat.
type Plot struct {
	Width    float64 // canvas px
	Height   float64 // canvas px
	Duration float64 // animation seconds; <= 0 defaults to 3
}

// scaleFor fits the larger of the arc's extents onto the canvas
// width, matching the original illustrator's framing.
func (p Plot) scaleFor(traj trajectory.Trajectory) float64 {
	maxX, maxY := traj.Bounds()
	extent := math.Max(maxX, maxY)
	if extent <= 0 {
		return 1
	}
	return p.Width / extent
}

// Document builds the SVG document for one shot.
func (p Plot) Document(traj trajectory.Trajectory, target trajectory.Target) *Document {
	doc := NewDocument(p.Width, p.Height, Black)
	if len(traj) == 0 {
		return doc
	}

	scale := p.scaleFor(traj)
	toX := func(x float64) float64 { return x * scale }
	toY := func(y float64) float64 { return p.Height - y*scale }

	for _, s := range traj {
		color := Blue
		if target.Contains(s.Pos) {
			color = Green
		}
		doc.Addf("<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" />",
			toX(s.Pos.X), toY(s.Pos.Y), 2.0, color)
	}

	// The basket: a flat bar centered on the rim position.
	doc.Addf("<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" style=\"fill:green;stroke:green;stroke-width:%.2f\" />",
		toX(target.Pos.X)-10, toY(target.Pos.Y)-2, 20.0, 4.0, 1.0)

	doc.Add(p.motionPath(traj, toX, toY))
	doc.Add(p.animatedBall())

	return doc
}

// motionPath emits the polyline the animated ball follows.
func (p Plot) motionPath(traj trajectory.Trajectory, toX, toY func(float64) float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<path id=\"motionPath\" fill=\"none\" d=\"M%.2f,%.2f\n",
		toX(traj[0].Pos.X), toY(traj[0].Pos.Y))
	for _, s := range traj {
		fmt.Fprintf(&b, "L%.2f,%.2f\n", toX(s.Pos.X), toY(s.Pos.Y))
	}
	b.WriteString("\" />")
	return b.String()
}

// animatedBall emits the ball circle plus the animateMotion element
// binding it to the motion path.
func (p Plot) animatedBall() string {
	duration := p.Duration
	if duration <= 0 {
		duration = 3
	}
	var b strings.Builder
	b.WriteString("<circle id=\"ball\" cx=\"0.00\" cy=\"0.00\" r=\"3\" fill=\"yellow\" />\n")
	fmt.Fprintf(&b, "<animateMotion\nxlink:href=\"#ball\"\ndur=\"%.0fs\"\nbegin=\"0s\"\nfill=\"freeze\"\nrepeatCount=\"indefinite\">\n<mpath xlink:href=\"#motionPath\" />\n</animateMotion>",
		duration)
	return b.String()
}

// FileRenderer writes the animated plot to a file, satisfying
// render.Renderer.
type FileRenderer struct {
	Path string
	Plot Plot
}

// Render implements the renderer contract.
func (r FileRenderer) Render(traj trajectory.Trajectory, target trajectory.Target, _ trajectory.HitResult) error {
	return r.Plot.Document(traj, target).WriteFile(r.Path)
}
