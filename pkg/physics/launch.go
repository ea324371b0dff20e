// pkg/physics/launch.go
package physics

import "math"

// Gravity is the standard gravitational acceleration at the Earth's
// surface, in m/s².
const Gravity = 9.807

// Launch holds the initial conditions of a throw. It is a value type:
// construct it once and every method answers a question about the same
// arc. Gravity is a positive magnitude applied along -Y.
//
// The motion follows uniformly accelerated movement decomposed into
// its components:
//
//	v0x = v0 * cos(angle)
//	v0y = v0 * sin(angle)
//	x(t) = x0 + v0x*t
//	y(t) = y0 + v0y*t - (1/2)*g*t²
type Launch struct {
	Origin  Vector2D // release point, meters
	Speed   float64  // initial speed, m/s
	Angle   float64  // elevation from the +X axis, radians
	Gravity float64  // m/s², positive, applied downward
}

// Velocity decomposes the initial speed into X and Y components.
func (l Launch) Velocity() Vector2D {
	return FromAngle(l.Angle, l.Speed)
}

// PositionAt returns the ball position t seconds after release.
func (l Launch) PositionAt(t float64) Vector2D {
	v := l.Velocity()
	return Vector2D{
		X: l.Origin.X + v.X*t,
		Y: l.Origin.Y + v.Y*t - 0.5*l.Gravity*t*t,
	}
}

// ApexTime returns the instant at which vertical velocity reaches
// zero. Throws released flat or downward peak at release, so the apex
// time is zero.
func (l Launch) ApexTime() float64 {
	vy := l.Velocity().Y
	if vy <= 0 || l.Gravity <= 0 {
		return 0
	}
	return vy / l.Gravity
}

// ApexHeight returns the highest Y the ball reaches.
func (l Launch) ApexHeight() float64 {
	return l.PositionAt(l.ApexTime()).Y
}

// FlightTime returns the time at which the descending ball reaches
// landingY, solving (1/2)*g*t² - v0y*t - (y0 - landingY) = 0 for the
// larger root. Returns zero when the ball never descends to landingY
// (launch point below it with an upward arc that falls short) or when
// gravity is zero.
func (l Launch) FlightTime(landingY float64) float64 {
	if l.Gravity <= 0 {
		return 0
	}
	vy := l.Velocity().Y
	disc := vy*vy + 2*l.Gravity*(l.Origin.Y-landingY)
	if disc < 0 {
		return 0
	}
	return (vy + math.Sqrt(disc)) / l.Gravity
}

// Range returns the horizontal distance covered when the ball descends
// back to landingY.
func (l Launch) Range(landingY float64) float64 {
	return l.Velocity().X * l.FlightTime(landingY)
}

// FlatRange is the closed form v0²*sin(2*angle)/g for a launch that
// lands at its release height.
func (l Launch) FlatRange() float64 {
	if l.Gravity <= 0 {
		return 0
	}
	return l.Speed * l.Speed * math.Sin(2*l.Angle) / l.Gravity
}
