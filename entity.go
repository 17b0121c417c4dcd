package main

import "math"

// Particle is one fragment of an explosion, positioned relative to the
// explosion center. Clients redraw explosions from these rather than from
// the transmitted geometry.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// SpawnArgs carries the initial state for spawning an entity. A zero Scale
// means "leave the current scale alone" and nil Points means "keep the
// current geometry" — explicit zeros are indistinguishable from absent
// values, matching the wire semantics.
type SpawnArgs struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Scale  float64
	Points []float64
}

// Entity is any simulated world object. Kind-specific behavior is carried
// by the Type's behavior table; kind-specific state lives in the trailing
// fields and is only meaningful for that kind.
type Entity struct {
	ID    int
	Type  *EntityType
	Alive bool

	X, Y   float64
	VX, VY float64
	Angle  float64 // degrees, wraps mod 360
	Scale  float64

	// Points is a flattened sequence of x,y offsets in local space. Empty
	// means no geometry. Mutate only through SetEntityPoints so the cached
	// radius stays consistent.
	Points        []float64
	Radius        float64
	RadiusSquared float64

	TimeLeft       float64    // bullet, debris, explosion countdown
	Particles      []Particle // explosion fragments
	Thrusting      bool       // ship flame flag
	ThrustingStart float64    // when the flame turned on
	BulletTimer    float64    // ship may not fire again before this time
	Player         *Player    // ship owner, nil for unowned entities
	FiredBy        *Entity    // ship that fired this bullet
}

// SpawnEntity brings an entity to life, dispatching to the kind's spawn
// hook when one is registered.
func (w *World) SpawnEntity(e *Entity, args SpawnArgs) {
	if spawn := e.Type.Behavior.Spawn; spawn != nil {
		spawn(w, e, args)
		return
	}
	w.baseSpawn(e, args)
}

// baseSpawn resets the kinematic state and marks the entity alive. Geometry
// is replaced only when given; otherwise a non-zero scale rescales the
// existing points.
func (w *World) baseSpawn(e *Entity, args SpawnArgs) {
	e.Alive = true
	e.X = args.X
	e.Y = args.Y
	e.VX = args.VX
	e.VY = args.VY
	e.Angle = args.Angle
	if args.Points != nil {
		w.SetEntityPoints(e, args.Points, args.Scale, false)
	} else if args.Scale != 0 {
		w.SetEntityScale(e, args.Scale)
	}
	w.entitySpawned(e)
}

// KillEntity marks an entity dead, dispatching to the kind's die hook.
// Killing a dead entity is a no-op, so die hooks never fire twice and the
// death is never broadcast twice.
func (w *World) KillEntity(e *Entity) {
	if !e.Alive {
		return
	}
	if die := e.Type.Behavior.Die; die != nil {
		die(w, e)
		return
	}
	w.baseDie(e)
}

func (w *World) baseDie(e *Entity) {
	e.Alive = false
	w.entityDied(e)
}

// UpdateEntity runs one tick of an entity, dispatching to the kind's update
// hook. Dead entities are inert.
func (w *World) UpdateEntity(e *Entity) {
	if update := e.Type.Behavior.Update; update != nil {
		update(w, e)
		return
	}
	w.baseUpdate(e)
}

// baseUpdate integrates position by velocity and wraps the entity around
// the toroidal world. The wrap triggers at the bounding radius so an entity
// is symmetrically off-screen on both sides of the seam.
func (w *World) baseUpdate(e *Entity) {
	if !e.Alive {
		return
	}
	e.X += e.VX * w.DT
	e.Y += e.VY * w.DT
	if e.X < -e.Radius {
		e.X = WorldWidth + e.Radius
	} else if e.X > WorldWidth+e.Radius {
		e.X = -e.Radius
	}
	if e.Y < -e.Radius {
		e.Y = WorldHeight + e.Radius
	} else if e.Y > WorldHeight+e.Radius {
		e.Y = -e.Radius
	}
	w.entityMoved(e)
}

// SetEntityPoints replaces the entity's geometry, optionally rescaling it,
// and recomputes the bounding radius. Unless broadcast is suppressed the
// new geometry is announced to replicas.
func (w *World) SetEntityPoints(e *Entity, points []float64, scale float64, broadcast bool) {
	e.Points = points
	if scale != 0 {
		e.Scale = scale
	}
	e.updateRadius()
	if broadcast {
		w.entityReshaped(e)
	}
}

// SetEntityScale rescales the entity's geometry and recomputes the bounding
// radius. Callers broadcast via spawn or points messages as needed.
func (w *World) SetEntityScale(e *Entity, scale float64) {
	e.Scale = scale
	e.updateRadius()
}

func (e *Entity) updateRadius() {
	if ur := e.Type.Behavior.UpdateRadius; ur != nil {
		ur(e)
		return
	}
	e.baseUpdateRadius()
}

// baseUpdateRadius caches the bounding circle of the scaled points.
func (e *Entity) baseUpdateRadius() {
	max := 0.0
	for i := 0; i+1 < len(e.Points); i += 2 {
		x := e.Points[i] * e.Scale
		y := e.Points[i+1] * e.Scale
		if d := x*x + y*y; d > max {
			max = d
		}
	}
	e.RadiusSquared = max
	e.Radius = math.Sqrt(max)
}

// Overlaps reports whether the two entities' polylines intersect. A cheap
// bounding-circle rejection runs first; the full test checks every edge
// pair with the parametric segment intersection formula. Edges wrap from
// the last vertex back to the first, which also makes two-point "line"
// entities like bullets behave as degenerate polygons.
//
/// TODO: the rejection recomputes a sqrt per call instead of comparing
// against RadiusSquared; keep the comparison semantics if changing this.
func (e *Entity) Overlaps(other *Entity) bool {
	if Distance(e.X, e.Y, other.X, other.Y) > e.Radius+other.Radius {
		return false
	}
	an := len(e.Points) / 2
	bn := len(other.Points) / 2
	if an == 0 || bn == 0 {
		return false
	}
	for i := 0; i < bn; i++ {
		j := (i + 1) % bn
		b1x := other.X + other.Points[i*2]*other.Scale
		b1y := other.Y + other.Points[i*2+1]*other.Scale
		b2x := other.X + other.Points[j*2]*other.Scale
		b2y := other.Y + other.Points[j*2+1]*other.Scale
		for k := 0; k < an; k++ {
			l := (k + 1) % an
			a1x := e.X + e.Points[k*2]*e.Scale
			a1y := e.Y + e.Points[k*2+1]*e.Scale
			a2x := e.X + e.Points[l*2]*e.Scale
			a2y := e.Y + e.Points[l*2+1]*e.Scale
			if segmentsIntersect(a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y) {
				return true
			}
		}
	}
	return false
}

// segmentsIntersect reports whether segments (x1,y1)-(x2,y2) and
// (x3,y3)-(x4,y4) properly intersect. Parallel segments never intersect.
func segmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	d := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if d == 0 {
		return false
	}
	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / d
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / d
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}
