package sim

import (
	"cmp"
	"slices"
)

// World rules
// - Dynamic bodies are circles, static bodies are half-planes (walls).
// - Every Step, each dynamic body is integrated, pushed out of the walls,
// then pushed out of every other dynamic body it overlaps.
// - Bodies are always visited in ascending id order. Collision resolution
// changes positions as it goes, so the order matters for the outcome and it
// has to be the same every time the same inputs are replayed.
// - The World knows nothing about pieces, ranks or merging. It reports which
// bodies collided and lets the caller decide what that means.

// Contact is a collision found during a Step. For two dynamic bodies, A has
// the lower id. For a wall contact, A is the dynamic body and B the wall.
type Contact struct {
	A     BodyId
	B     BodyId
	Depth float64
	Wall  bool
}

type World struct {
	Gravity Vec
	// Bodies sorted by id.
	bodies  []*Body
	nextId  BodyId
	dynamic []*Body
	static  []*Body
}

func NewWorld(gravity Vec) *World {
	return &World{Gravity: gravity}
}

// AddBody assigns the next id to b and starts simulating it.
func (w *World) AddBody(b *Body) BodyId {
	w.nextId++
	b.Id = w.nextId
	w.bodies = append(w.bodies, b)
	return b.Id
}

// RemoveBody stops simulating the body with the given id. It returns false
// if there is no such body.
func (w *World) RemoveBody(id BodyId) bool {
	i, found := w.index(id)
	if !found {
		return false
	}
	w.bodies = slices.Delete(w.bodies, i, i+1)
	return true
}

func (w *World) index(id BodyId) (int, bool) {
	return slices.BinarySearchFunc(w.bodies, id, func(b *Body, target BodyId) int {
		return cmp.Compare(b.Id, target)
	})
}

// Body returns the body with the given id, or nil.
func (w *World) Body(id BodyId) *Body {
	i, found := w.index(id)
	if !found {
		return nil
	}
	return w.bodies[i]
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Touching reports whether two bodies of the World touch. Unknown ids never
// touch anything.
func (w *World) Touching(a BodyId, b BodyId) bool {
	ba := w.Body(a)
	bb := w.Body(b)
	if ba == nil || bb == nil || a == b {
		return false
	}
	return Touching(ba, bb)
}

// Step advances every dynamic body by dt seconds and returns the contacts
// that were resolved, in the order in which they were found: wall contacts
// first, then body pairs by (lower id, higher id).
func (w *World) Step(dt float64) (contacts []Contact) {
	w.split()
	w.integrate(dt)
	contacts = w.collideWalls(contacts)
	contacts = w.collideBodies(contacts)
	w.contain()
	return
}

func (w *World) split() {
	w.dynamic = w.dynamic[:0]
	w.static = w.static[:0]
	for _, b := range w.bodies {
		if b.Static {
			w.static = append(w.static, b)
		} else {
			w.dynamic = append(w.dynamic, b)
		}
	}
}

// isFloor reports whether a wall holds bodies up against gravity.
func (w *World) isFloor(wall *Body) bool {
	return wall.Normal.Dot(w.Gravity) < 0
}

func (w *World) integrate(dt float64) {
	for _, b := range w.dynamic {
		vel := b.Vel.Plus(w.Gravity.Times(dt))
		next := *b
		next.Pos = b.Pos.Plus(vel.Times(dt))

		var floor *Body
		for _, s := range w.static {
			if w.isFloor(s) && planeDist(&next, s) < b.Radius {
				floor = s
				break
			}
		}

		if floor == nil {
			b.Vel = vel
			b.Pos = next.Pos
			continue
		}

		// The body is resting. Integrating gravity and then clamping would
		// add energy every tick, so the velocity into the floor is dropped
		// and the body only slides along it.
		n := floor.Normal
		b.Vel.Subtract(n.Times(b.Vel.Dot(n)))
		b.Pos.Add(b.Vel.Times(dt))
		b.Pos.Add(n.Times(b.Radius - planeDist(b, floor)))
	}
}

func (w *World) collideWalls(contacts []Contact) []Contact {
	for _, b := range w.dynamic {
		for _, s := range w.static {
			depth := b.Radius - planeDist(b, s)
			if depth <= 0 {
				continue
			}
			n := s.Normal
			b.Pos.Add(n.Times(depth))
			// Reflect the normal component, scaled by the less bouncy of the
			// two. The tangential component is left alone, there's no
			// friction.
			if vn := b.Vel.Dot(n); vn < 0 {
				e := min(b.Restitution, s.Restitution)
				b.Vel.Subtract(n.Times((1 + e) * vn))
			}
			contacts = append(contacts, Contact{A: b.Id, B: s.Id, Depth: depth, Wall: true})
		}
	}
	return contacts
}

func (w *World) collideBodies(contacts []Contact) []Contact {
	for i := range w.dynamic {
		for j := i + 1; j < len(w.dynamic); j++ {
			a := w.dynamic[i]
			b := w.dynamic[j]
			n, d := contactNormal(a, b)
			depth := a.Radius + b.Radius - d
			if depth <= 0 {
				continue
			}

			// Each body takes half of the correction, which removes the
			// overlap exactly and leaves the midpoint where it was.
			a.Pos.Subtract(n.Times(depth / 2))
			b.Pos.Add(n.Times(depth / 2))
			resolveImpulse(a, b, n)

			contacts = append(contacts, Contact{A: a.Id, B: b.Id, Depth: depth})
		}
	}
	return contacts
}

// resolveImpulse changes the velocities of two colliding circles so that
// they stop approaching each other along n, the unit normal from a to b.
//
//	rel = (vb - va) . n                 (negative while approaching)
//	e   = (ea + eb) / 2
//	m   = radius^2                      (disc area stands in for mass)
//	j   = -(1 + e) * rel / (1/ma + 1/mb)
//	va -= n * j / ma
//	vb += n * j / mb
//
// Afterwards the relative normal velocity is -e * rel.
func resolveImpulse(a *Body, b *Body, n Vec) {
	rel := a.Vel.To(b.Vel).Dot(n)
	if rel >= 0 {
		return
	}
	e := (a.Restitution + b.Restitution) / 2
	ma := a.Radius * a.Radius
	mb := b.Radius * b.Radius
	j := -(1 + e) * rel / (1/ma + 1/mb)
	a.Vel.Subtract(n.Times(j / ma))
	b.Vel.Add(n.Times(j / mb))
}

// TouchingPairs returns every pair of dynamic bodies that overlap or touch
// where they are now, by (lower id, higher id). After a Step this is the
// state the bodies were left in, after every correction.
func (w *World) TouchingPairs() (contacts []Contact) {
	w.split()
	for i := range w.dynamic {
		for j := i + 1; j < len(w.dynamic); j++ {
			a := w.dynamic[i]
			b := w.dynamic[j]
			if depth := Penetration(a, b); depth > -touchTolerance {
				contacts = append(contacts, Contact{A: a.Id, B: b.Id, Depth: depth})
			}
		}
	}
	return
}

// contain puts back inside the walls any body that pair resolution pushed
// out of them. Only positions move; velocity into the wall is dropped.
func (w *World) contain() {
	for _, b := range w.dynamic {
		for _, s := range w.static {
			depth := b.Radius - planeDist(b, s)
			if depth <= 0 {
				continue
			}
			n := s.Normal
			b.Pos.Add(n.Times(depth))
			if vn := b.Vel.Dot(n); vn < 0 {
				b.Vel.Subtract(n.Times(vn))
			}
		}
	}
}
