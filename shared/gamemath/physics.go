// Package gamemath holds the small amount of 2D math the tank simulation needs.
// Angles are in degrees; 0 points up the screen and angles grow counter-clockwise,
// so the heading vector of angle a is (-sin a, -cos a).
package gamemath

import "math"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

// LenSq returns the squared magnitude.
func (v Vector) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the magnitude.
func (v Vector) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in v's direction, or the zero vector if v is zero.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// Lerp moves t of the way from v towards o.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Heading returns the unit vector a tank with the given angle faces.
func Heading(angleDeg float64) Vector {
	rad := angleDeg * math.Pi / 180
	return Vector{-math.Sin(rad), -math.Cos(rad)}
}

// WrapAngle maps any angle into [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360 in float64
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampLength scales v down so that its magnitude does not exceed max.
func ClampLength(v Vector, max float64) Vector {
	if max <= 0 {
		return Vector{}
	}
	if v.LenSq() > max*max {
		return v.Normalize().Scale(max)
	}
	return v
}
