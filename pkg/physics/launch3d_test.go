// pkg/physics/launch3d_test.go
package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLaunch3D_ZeroAzimuthMatches2D(t *testing.T) {
	l3 := Launch3D{
		Origin:    mgl64.Vec3{0, 1.5, 0},
		Speed:     10,
		Elevation: math.Pi / 4,
		Azimuth:   0,
		Gravity:   9.8,
	}
	l2 := l3.SideView()

	for _, tt := range []float64{0, 0.25, 0.5, 1, 1.4} {
		p3 := l3.PositionAt(tt)
		p2 := l2.PositionAt(tt)
		if math.Abs(p3.X()-p2.X) > tolerance || math.Abs(p3.Y()-p2.Y) > tolerance {
			t.Errorf("t=%v: 3D position (%v, %v) diverges from 2D (%v, %v)",
				tt, p3.X(), p3.Y(), p2.X, p2.Y)
		}
		if p3.Z() != 0 {
			t.Errorf("t=%v: expected Z=0 with zero azimuth, got %v", tt, p3.Z())
		}
	}
}

func TestLaunch3D_SideViewKeepsHeight(t *testing.T) {
	// The projection discards X and Z but must carry the release
	// height and the scalar launch parameters unchanged.
	l := Launch3D{
		Origin:    mgl64.Vec3{3, 2.1, -4},
		Speed:     9,
		Elevation: 0.7,
		Azimuth:   1.2,
		Gravity:   Gravity,
	}
	side := l.SideView()
	if side.Origin != (Vector2D{X: 0, Y: 2.1}) {
		t.Errorf("SideView().Origin = %v, expected {0 2.1}", side.Origin)
	}
	if side.Speed != l.Speed || side.Angle != l.Elevation || side.Gravity != l.Gravity {
		t.Errorf("SideView() = %+v, expected speed, angle and gravity carried over", side)
	}
}

func TestLaunch3D_QuarterTurnAzimuth(t *testing.T) {
	// A 90° azimuth moves all horizontal motion onto the Z axis.
	l := Launch3D{
		Speed:     10,
		Elevation: math.Pi / 4,
		Azimuth:   math.Pi / 2,
		Gravity:   9.8,
	}
	v := l.Velocity()
	if math.Abs(v.X()) > tolerance {
		t.Errorf("Velocity().X = %v, expected 0", v.X())
	}
	if math.Abs(v.Z()-10*math.Sqrt2/2) > tolerance {
		t.Errorf("Velocity().Z = %v, expected %v", v.Z(), 10*math.Sqrt2/2)
	}
}

func TestLaunch3D_GravityOnlyAffectsY(t *testing.T) {
	l := Launch3D{
		Speed:     8,
		Elevation: 0.6,
		Azimuth:   0.3,
		Gravity:   Gravity,
	}
	v := l.Velocity()
	p := l.PositionAt(2)
	if math.Abs(p.X()-2*v.X()) > tolerance || math.Abs(p.Z()-2*v.Z()) > tolerance {
		t.Errorf("horizontal components must stay linear: got (%v, %v), want (%v, %v)",
			p.X(), p.Z(), 2*v.X(), 2*v.Z())
	}
	wantY := 2*v.Y() - 0.5*Gravity*4
	if math.Abs(p.Y()-wantY) > tolerance {
		t.Errorf("PositionAt(2).Y = %v, expected %v", p.Y(), wantY)
	}
}
