// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-hoop/pkg/logging"
	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// Renderer draws one sampled shot. Implementations format the
// time-ascending sample sequence plus the hit outcome for a surface
// (terminal, SVG file, PNG chart, window); none of them feed back
// into the simulation.
type Renderer interface {
	Render(traj trajectory.Trajectory, target trajectory.Target, hit trajectory.HitResult) error
}

// Null is a Renderer that only logs, for running the pipeline
// headless.
type Null struct {
	logger *logging.Logger
}

// NewNull creates a Null renderer with structured logging.
func NewNull() *Null {
	return &Null{logger: logging.NewLogger()}
}

// Render implements Renderer.
func (n *Null) Render(traj trajectory.Trajectory, target trajectory.Target, hit trajectory.HitResult) error {
	n.logger.Debug(context.Background(), "Render called",
		"samples", len(traj),
		"made", hit.Made,
		"min_distance", hit.MinDistance,
	)
	return nil
}
