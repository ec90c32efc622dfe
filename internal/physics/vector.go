package physics

import "math"

// Vec2 is a 2D vector used for positions, velocities and headings.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rotate applies a 2D rotation matrix of angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize divides v by its length. A zero vector yields NaN components;
// use NormalizeOrZero where that can happen.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormalizeOrZero is Normalize with the zero vector mapped to itself.
func (v Vec2) NormalizeOrZero() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Vec2{}
	}
	return v.Normalize()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// DistanceSquared returns the squared distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float64 {
	return DistanceSquared(v.X, v.Y, o.X, o.Y)
}

// Wrap maps v into [0, w) x [0, h) (toroidal field).
func (v Vec2) Wrap(w, h float64) Vec2 {
	return Vec2{X: wrapAxis(v.X, w), Y: wrapAxis(v.Y, h)}
}

func wrapAxis(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	// -tiny + size rounds up to size
	if x >= size {
		x = 0
	}
	return x
}
