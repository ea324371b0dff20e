// Package trajectory samples the closed-form arc of a launched ball
// at a fixed timestep and decides whether it passes through a target.
// Sampling is a pure function of its inputs: no state survives a call
// and identical inputs produce identical trajectories.
package trajectory

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-hoop/pkg/physics"
)

// Sample is one computed instant of a flight.
type Sample struct {
	T   float64          `json:"t"`   // seconds since release
	Pos physics.Vector2D `json:"pos"` // meters
}

// Trajectory is a time-ascending sequence of samples. It is produced
// once by a Sampler and never mutated.
type Trajectory []Sample

// Bounds returns the maximum X and Y reached across the trajectory,
// for scaling plots. Zeroes for an empty trajectory.
func (tr Trajectory) Bounds() (maxX, maxY float64) {
	for i, s := range tr {
		if i == 0 || s.Pos.X > maxX {
			maxX = s.Pos.X
		}
		if i == 0 || s.Pos.Y > maxY {
			maxY = s.Pos.Y
		}
	}
	return maxX, maxY
}

// Apex returns the index of the highest sample, -1 when empty.
// Ties resolve to the earliest sample.
func (tr Trajectory) Apex() int {
	apex := -1
	for i := range tr {
		if apex < 0 || tr[i].Pos.Y > tr[apex].Pos.Y {
			apex = i
		}
	}
	return apex
}

// Sampler fixes the discretization and the stopping policy of a
// simulation run. Duration is split into Steps equally spaced
// instants, the first at t=0 and the last at t=Duration, matching
// dt = Duration/(Steps-1).
type Sampler struct {
	Steps    int     // instants across Duration, >= 2
	Duration float64 // seconds, > 0
	Ground   float64 // landing plane; sampling stops below it
}

// DT returns the timestep between samples.
func (s Sampler) DT() float64 {
	return s.Duration / float64(s.Steps-1)
}

// Sample walks t = k*dt and records the ball position at each instant.
// Sampling stops at the first instant the ball is below Ground, or
// when Steps is exhausted, whichever comes first — both bounds are
// needed: a near-flat throw may stay above ground past Duration, and
// a downward throw crosses ground almost immediately. Below-ground
// positions are never recorded, so a launch point under Ground yields
// an empty trajectory rather than an error.
func (s Sampler) Sample(l physics.Launch) Trajectory {
	if s.Steps < 2 || s.Duration <= 0 {
		return nil
	}
	dt := s.DT()
	traj := make(Trajectory, 0, s.Steps)
	for k := 0; k < s.Steps; k++ {
		t := float64(k) * dt
		p := l.PositionAt(t)
		if p.Y < s.Ground {
			break
		}
		traj = append(traj, Sample{T: t, Pos: p})
	}
	return traj
}

// Sample3 is one computed instant of a 3D flight.
type Sample3 struct {
	T   float64    `json:"t"`
	Pos mgl64.Vec3 `json:"pos"`
}

// Trajectory3 is the 3D analogue of Trajectory.
type Trajectory3 []Sample3

// Sample3D samples a 3D launch under the same stopping policy as
// Sample; the ground test applies to the Y component.
func (s Sampler) Sample3D(l physics.Launch3D) Trajectory3 {
	if s.Steps < 2 || s.Duration <= 0 {
		return nil
	}
	dt := s.DT()
	traj := make(Trajectory3, 0, s.Steps)
	for k := 0; k < s.Steps; k++ {
		t := float64(k) * dt
		p := l.PositionAt(t)
		if p.Y() < s.Ground {
			break
		}
		traj = append(traj, Sample3{T: t, Pos: p})
	}
	return traj
}
