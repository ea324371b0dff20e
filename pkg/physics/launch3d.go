// pkg/physics/launch3d.go
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Launch3D adds an azimuth to the throw. Elevation tilts the velocity
// off the horizontal XZ plane, azimuth rotates it from +X toward +Z.
// Gravity still acts along -Y only, so the X and Z components stay
// linear in time.
type Launch3D struct {
	Origin    mgl64.Vec3 // release point, meters
	Speed     float64    // initial speed, m/s
	Elevation float64    // radians above the XZ plane
	Azimuth   float64    // radians from +X toward +Z
	Gravity   float64    // m/s², positive, applied downward
}

// Velocity decomposes the initial speed into X, Y and Z components.
func (l Launch3D) Velocity() mgl64.Vec3 {
	horizontal := l.Speed * math.Cos(l.Elevation)
	return mgl64.Vec3{
		horizontal * math.Cos(l.Azimuth),
		l.Speed * math.Sin(l.Elevation),
		horizontal * math.Sin(l.Azimuth),
	}
}

// PositionAt returns the ball position t seconds after release.
func (l Launch3D) PositionAt(t float64) mgl64.Vec3 {
	p := l.Origin.Add(l.Velocity().Mul(t))
	return mgl64.Vec3{p.X(), p.Y() - 0.5*l.Gravity*t*t, p.Z()}
}

// SideView projects the throw onto the vertical plane containing the
// velocity vector, yielding the equivalent 2D launch.
func (l Launch3D) SideView() Launch {
	return Launch{
		Origin:  Vector2D{X: 0, Y: l.Origin.Y()},
		Speed:   l.Speed,
		Angle:   l.Elevation,
		Gravity: l.Gravity,
	}
}
