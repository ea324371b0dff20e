// pkg/trajectory/hit.go
package trajectory

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-hoop/pkg/physics"
)

// Target is the basket: a fixed point plus the acceptance radius
// within which a passing ball counts as a made shot.
type Target struct {
	Pos    physics.Vector2D `json:"pos"`
	Radius float64          `json:"radius"` // meters, > 0
}

// Contains reports whether p lies within the acceptance radius.
func (t Target) Contains(p physics.Vector2D) bool {
	return t.Pos.Distance(p) <= t.Radius
}

// HitResult is the outcome of scanning a trajectory against a target.
type HitResult struct {
	Made        bool    `json:"made"`
	MinDistance float64 `json:"minDistance"` // +Inf for an empty trajectory
	Index       int     `json:"index"`       // sample of closest approach, -1 if empty
	Time        float64 `json:"time"`        // seconds at closest approach
}

// Evaluate scans every sample for the minimum Euclidean distance to
// the target and reports a made shot when that minimum is within the
// acceptance radius. Ties resolve to the earliest sample. An empty
// trajectory is a valid degenerate input and yields a miss at
// infinite distance, not an error.
func Evaluate(traj Trajectory, target Target) HitResult {
	result := HitResult{MinDistance: math.Inf(1), Index: -1}
	for i, s := range traj {
		d := s.Pos.Distance(target.Pos)
		if d < result.MinDistance {
			result.MinDistance = d
			result.Index = i
			result.Time = s.T
		}
	}
	result.Made = result.MinDistance <= target.Radius
	return result
}

// Target3 is the 3D basket.
type Target3 struct {
	Pos    mgl64.Vec3 `json:"pos"`
	Radius float64    `json:"radius"`
}

// Contains reports whether p lies within the acceptance radius.
func (t Target3) Contains(p mgl64.Vec3) bool {
	return p.Sub(t.Pos).Len() <= t.Radius
}

// Evaluate3 is the 3D analogue of Evaluate.
func Evaluate3(traj Trajectory3, target Target3) HitResult {
	result := HitResult{MinDistance: math.Inf(1), Index: -1}
	for i, s := range traj {
		d := s.Pos.Sub(target.Pos).Len()
		if d < result.MinDistance {
			result.MinDistance = d
			result.Index = i
			result.Time = s.T
		}
	}
	result.Made = result.MinDistance <= target.Radius
	return result
}
