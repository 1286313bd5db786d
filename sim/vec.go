package sim

import "math"

// Vec is a point or a direction in world coordinates. X grows to the right
// and Y grows downward, the same way screen pixels do.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Plus(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Minus(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v *Vec) Add(other Vec) {
	v.X += other.X
	v.Y += other.Y
}

func (v *Vec) Subtract(other Vec) {
	v.X -= other.X
	v.Y -= other.Y
}

func (v Vec) Times(factor float64) Vec {
	return Vec{v.X * factor, v.Y * factor}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) SquaredLen() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.SquaredLen())
}

func (v Vec) To(other Vec) Vec {
	return Vec{other.X - v.X, other.Y - v.Y}
}

func (v Vec) DistTo(other Vec) float64 {
	return v.To(other).Len()
}

// Midpoint returns the point halfway between v and other.
func (v Vec) Midpoint(other Vec) Vec {
	return Vec{(v.X + other.X) / 2, (v.Y + other.Y) / 2}
}

// Normalized returns the unit vector pointing the same way as v. The zero
// vector has no direction, so it stays the zero vector.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Clamp limits x to [lo, hi]. If the interval is empty (lo > hi), the
// midpoint of the two bounds is returned, which is the only sensible place
// for something that doesn't fit.
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(max(x, lo), hi)
}
