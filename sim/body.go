package sim

import "math"

// BodyId identifies a body inside a World. Ids are handed out in increasing
// order and never reused, so sorting by id is the same as sorting by the
// moment a body was added.
type BodyId int64

// NoBody is the id of a body that was never added to a World.
const NoBody BodyId = 0

// touchTolerance is how far apart two shapes can be and still count as
// touching. Positional correction leaves resting bodies exactly at contact
// distance, give or take rounding.
const touchTolerance = 1e-6

// coincidentDist is the center distance under which two circles are treated
// as sharing a center and get the fixed fallback normal.
const coincidentDist = 1e-12

// Body is a physical object. Dynamic bodies are circles. Static bodies are
// half-planes: Pos is a point on the boundary and Normal is the unit normal
// pointing towards the side where dynamic bodies are allowed to be.
type Body struct {
	Id          BodyId
	Pos         Vec
	Vel         Vec
	Radius      float64
	Restitution float64
	Static      bool
	Normal      Vec
}

// NewCircle creates a dynamic circular body at rest.
func NewCircle(pos Vec, radius, restitution float64) *Body {
	return &Body{Pos: pos, Radius: radius, Restitution: restitution}
}

// NewPlane creates a static half-plane whose boundary passes through pos.
func NewPlane(pos Vec, normal Vec, restitution float64) *Body {
	return &Body{
		Pos:         pos,
		Normal:      normal.Normalized(),
		Restitution: restitution,
		Static:      true,
	}
}

// planeDist is the signed distance from the center of circle c to the
// boundary of plane p. Positive values are on the allowed side.
func planeDist(c *Body, p *Body) float64 {
	return p.Pos.To(c.Pos).Dot(p.Normal)
}

// contactNormal returns the unit vector pointing from a to b and the
// distance between their centers. Coincident centers get (1, 0) so that
// nothing downstream divides by zero.
func contactNormal(a *Body, b *Body) (n Vec, d float64) {
	delta := a.Pos.To(b.Pos)
	d = delta.Len()
	if d < coincidentDist {
		return Vec{1, 0}, d
	}
	return delta.Times(1 / d), d
}

// Penetration returns how deep two shapes overlap. Zero or a negative value
// means they don't overlap; the magnitude of a negative value is the gap
// between them. Two static bodies never interact.
func Penetration(a *Body, b *Body) float64 {
	switch {
	case a.Static && b.Static:
		return math.Inf(-1)
	case a.Static:
		return b.Radius - planeDist(b, a)
	case b.Static:
		return a.Radius - planeDist(a, b)
	default:
		_, d := contactNormal(a, b)
		return a.Radius + b.Radius - d
	}
}

// Overlapping is the test the World uses to decide that two bodies collide.
func Overlapping(a *Body, b *Body) bool {
	return Penetration(a, b) > 0
}

// Touching reports whether two bodies overlap or are in contact, within a
// small tolerance.
func Touching(a *Body, b *Body) bool {
	return Penetration(a, b) > -touchTolerance
}
