// pkg/trajectory/hit_test.go
package trajectory

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-hoop/pkg/physics"
)

func TestEvaluate_TargetOnTrajectory(t *testing.T) {
	// Place the target exactly on a sampled point: the evaluator must
	// report a made shot with ~zero distance at that index.
	l := physics.Launch{Speed: 10, Angle: math.Pi / 4, Gravity: 9.8}
	traj := Sampler{Steps: 100, Duration: 3}.Sample(l)

	k := 30
	target := Target{Pos: traj[k].Pos, Radius: 0.1}
	result := Evaluate(traj, target)

	if !result.Made {
		t.Fatal("expected a made shot")
	}
	if result.Index != k {
		t.Errorf("Index = %d, expected %d", result.Index, k)
	}
	if result.MinDistance > 1e-12 {
		t.Errorf("MinDistance = %v, expected ~0", result.MinDistance)
	}
	if result.Time != traj[k].T {
		t.Errorf("Time = %v, expected %v", result.Time, traj[k].T)
	}
}

func TestEvaluate_Miss(t *testing.T) {
	l := physics.Launch{Speed: 10, Angle: math.Pi / 4, Gravity: 9.8}
	traj := Sampler{Steps: 100, Duration: 3}.Sample(l)

	target := Target{Pos: physics.Vector2D{X: 50, Y: 50}, Radius: 0.5}
	result := Evaluate(traj, target)

	if result.Made {
		t.Fatal("expected a miss")
	}
	if result.Index < 0 || result.Index >= len(traj) {
		t.Errorf("Index = %d out of range", result.Index)
	}
	if math.IsInf(result.MinDistance, 1) {
		t.Error("MinDistance must be finite for a non-empty trajectory")
	}
}

func TestEvaluate_EmptyTrajectory(t *testing.T) {
	result := Evaluate(nil, Target{Pos: physics.Vector2D{X: 1}, Radius: 10})
	if result.Made {
		t.Error("empty trajectory must miss")
	}
	if !math.IsInf(result.MinDistance, 1) {
		t.Errorf("MinDistance = %v, expected +Inf", result.MinDistance)
	}
	if result.Index != -1 {
		t.Errorf("Index = %d, expected -1", result.Index)
	}
}

func TestEvaluate_TieBreakEarliest(t *testing.T) {
	// Two samples equidistant from the target: the earlier one wins.
	traj := Trajectory{
		{T: 0, Pos: physics.Vector2D{X: -1, Y: 0}},
		{T: 1, Pos: physics.Vector2D{X: 1, Y: 0}},
	}
	result := Evaluate(traj, Target{Pos: physics.Vector2D{}, Radius: 2})
	if result.Index != 0 || result.Time != 0 {
		t.Errorf("tie resolved to index %d (t=%v), expected the earliest", result.Index, result.Time)
	}
}

func TestEvaluate_SpecExample(t *testing.T) {
	// spec-book numbers: v0 = 10 m/s at 45°, g = 9.8, released at
	// ground level, dt = 0.01. Range is ~10.2 m, so a basket at
	// (10.2, 0) with a 0.5 m acceptance radius is a made shot.
	l := physics.Launch{Speed: 10, Angle: math.Pi / 4, Gravity: 9.8}
	traj := Sampler{Steps: 301, Duration: 3}.Sample(l)

	target := Target{Pos: physics.Vector2D{X: 10.2, Y: 0}, Radius: 0.5}
	result := Evaluate(traj, target)
	if !result.Made {
		t.Fatalf("expected a made shot, min distance %v", result.MinDistance)
	}
	if result.MinDistance > 0.5 {
		t.Errorf("MinDistance = %v, expected <= 0.5", result.MinDistance)
	}
}

func TestTarget_Contains(t *testing.T) {
	target := Target{Pos: physics.Vector2D{X: 8, Y: 3.05}, Radius: 0.1}
	if !target.Contains(physics.Vector2D{X: 8.05, Y: 3.05}) {
		t.Error("point within radius reported outside")
	}
	if target.Contains(physics.Vector2D{X: 8.2, Y: 3.05}) {
		t.Error("point outside radius reported inside")
	}
}

func TestEvaluate3(t *testing.T) {
	l := physics.Launch3D{
		Origin:    mgl64.Vec3{0, 1.5, 0},
		Speed:     10,
		Elevation: math.Pi / 4,
		Azimuth:   math.Pi / 6,
		Gravity:   9.8,
	}
	traj := Sampler{Steps: 200, Duration: 3}.Sample3D(l)
	if len(traj) == 0 {
		t.Fatal("expected samples")
	}

	k := len(traj) / 2
	target := Target3{Pos: traj[k].Pos, Radius: 0.05}
	result := Evaluate3(traj, target)
	if !result.Made || result.Index != k {
		t.Errorf("expected a made shot at index %d, got %+v", k, result)
	}

	miss := Evaluate3(nil, target)
	if miss.Made || !math.IsInf(miss.MinDistance, 1) || miss.Index != -1 {
		t.Errorf("empty 3D trajectory: got %+v", miss)
	}
}
