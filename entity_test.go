package main

import (
	"math"
	"testing"
)

func newTestWorld() *World {
	w := NewWorld(nil)
	w.SeedRand(12345)
	return w
}

// square returns a closed square polygon of the given half-size.
func square(half float64) []float64 {
	return []float64{-half, -half, half, -half, half, half, -half, half}
}

func checkRadius(t *testing.T, e *Entity) {
	t.Helper()
	max := 0.0
	for i := 0; i+1 < len(e.Points); i += 2 {
		x := e.Points[i] * e.Scale
		y := e.Points[i+1] * e.Scale
		if d := math.Sqrt(x*x + y*y); d > max {
			max = d
		}
	}
	if math.Abs(e.Radius-max) > 1e-9 {
		t.Errorf("radius %f, want %f", e.Radius, max)
	}
	if math.Abs(e.RadiusSquared-e.Radius*e.Radius) > 1e-9 {
		t.Errorf("radiusSquared %f, want %f", e.RadiusSquared, e.Radius*e.Radius)
	}
}

func TestRadiusInvariant(t *testing.T) {
	w := newTestWorld()
	e := w.Create(w.Asteroids)
	w.SpawnEntity(e, SpawnArgs{X: 100, Y: 100, Points: square(10), Scale: 2})
	checkRadius(t, e)

	w.SetEntityScale(e, 3)
	checkRadius(t, e)

	w.SetEntityPoints(e, []float64{5, 0, 0, 5, -12, 3}, 0, false)
	checkRadius(t, e)

	// Respawning at a new scale recomputes the cached radius
	w.SpawnEntity(e, SpawnArgs{X: 50, Y: 50, Scale: 1.5})
	checkRadius(t, e)
}

func TestSpawnResetsKinematics(t *testing.T) {
	w := newTestWorld()
	e := w.Create(w.Asteroids)
	w.SpawnEntity(e, SpawnArgs{X: 10, Y: 20, VX: 1, VY: 2, Angle: 45, Points: square(4), Scale: 1})
	w.KillEntity(e)

	// Respawning with explicit args resets every kinematic field
	w.SpawnEntity(e, SpawnArgs{X: 300, Y: 200, VX: 5, VY: 5, Angle: 90, Points: square(4), Scale: 1})
	if !e.Alive {
		t.Fatal("entity should be alive after spawn")
	}
	if e.X != 300 || e.Y != 200 || e.VX != 5 || e.VY != 5 || e.Angle != 90 {
		t.Errorf("spawn did not reset kinematics: %+v", e)
	}
}

func TestWraparoundExactReset(t *testing.T) {
	w := newTestWorld()
	e := w.Create(w.Asteroids)
	w.SpawnEntity(e, SpawnArgs{X: 100, Y: 100, Points: square(10), Scale: 1})
	r := e.Radius

	e.X = -r - 0.001
	e.VX = -50
	e.VY = 0
	w.Advance(1.0) // dt=1 pushes x further negative before the wrap check

	if e.X != WorldWidth+r {
		t.Errorf("x should reset to worldWidth+radius: got %f, want %f", e.X, WorldWidth+r)
	}

	e.X = WorldWidth + r + 0.001
	e.VX = 50
	w.Advance(2.0)
	if e.X != -r {
		t.Errorf("x should reset to -radius: got %f, want %f", e.X, -r)
	}
}

func TestDeadEntityIsInert(t *testing.T) {
	w := newTestWorld()
	e := w.Create(w.Asteroids)
	w.SpawnEntity(e, SpawnArgs{X: 100, Y: 100, VX: 50, VY: 0, Points: square(10), Scale: 1})
	w.KillEntity(e)

	x := e.X
	w.Advance(1.0)
	if e.X != x {
		t.Error("dead entity should not move")
	}
}

func TestKillEntityIdempotent(t *testing.T) {
	w := newTestWorld()
	deaths := 0
	sink := &recordingSink{onDied: func(*Entity) { deaths++ }}
	w.events = sink

	e := w.Create(w.Asteroids)
	w.SpawnEntity(e, SpawnArgs{X: 100, Y: 100, Points: square(10), Scale: 1})
	w.KillEntity(e)
	w.KillEntity(e)
	if deaths != 1 {
		t.Errorf("death broadcast %d times, want 1", deaths)
	}
}

func TestOverlapSymmetry(t *testing.T) {
	w := newTestWorld()

	// L-shaped, non-convex polygon
	lshape := []float64{0, 0, 20, 0, 20, 10, 10, 10, 10, 20, 0, 20}

	cases := []struct {
		name             string
		pa, pb           []float64
		ax, ay, bx, by   float64
		want             bool
	}{
		{"overlapping squares", square(10), square(10), 100, 100, 105, 105, true},
		{"separated squares", square(10), square(10), 100, 100, 200, 200, false},
		{"square and L-shape", square(8), lshape, 100, 100, 95, 95, true},
		{"line through square", square(10), []float64{-15, -15, 15, 15}, 100, 100, 100, 100, true},
	}

	for _, tc := range cases {
		a := w.Create(w.Asteroids)
		w.SpawnEntity(a, SpawnArgs{X: tc.ax, Y: tc.ay, Points: tc.pa, Scale: 1})
		b := w.Create(w.Asteroids)
		w.SpawnEntity(b, SpawnArgs{X: tc.bx, Y: tc.by, Points: tc.pb, Scale: 1})

		ab := a.Overlaps(b)
		ba := b.Overlaps(a)
		if ab != ba {
			t.Errorf("%s: overlap not symmetric: a/b=%v b/a=%v", tc.name, ab, ba)
		}
		if ab != tc.want {
			t.Errorf("%s: overlap=%v, want %v", tc.name, ab, tc.want)
		}
		w.KillEntity(a)
		w.KillEntity(b)
	}
}

func TestOverlapDegeneratePoint(t *testing.T) {
	w := newTestWorld()
	a := w.Create(w.Asteroids)
	w.SpawnEntity(a, SpawnArgs{X: 100, Y: 100, Points: square(10), Scale: 1})
	b := w.Create(w.Asteroids)
	w.SpawnEntity(b, SpawnArgs{X: 100, Y: 100, Points: []float64{0, 0}, Scale: 1})

	// A single point has only a zero-length edge; it can never properly
	// intersect, but it must not panic or false-positive.
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Error("point should not overlap anything")
	}
}

// recordingSink implements WorldEvents for tests.
type recordingSink struct {
	onSpawned   func(e *Entity)
	onDied      func(e *Entity)
	onMoved     func(e *Entity)
	onReshaped  func(e *Entity)
	onShipReady func(p *Player, e *Entity)
}

func (s *recordingSink) EntitySpawned(e *Entity) {
	if s.onSpawned != nil {
		s.onSpawned(e)
	}
}

func (s *recordingSink) EntityDied(e *Entity) {
	if s.onDied != nil {
		s.onDied(e)
	}
}

func (s *recordingSink) EntityMoved(e *Entity) {
	if s.onMoved != nil {
		s.onMoved(e)
	}
}

func (s *recordingSink) EntityReshaped(e *Entity) {
	if s.onReshaped != nil {
		s.onReshaped(e)
	}
}

func (s *recordingSink) ShipReady(p *Player, e *Entity) {
	if s.onShipReady != nil {
		s.onShipReady(p, e)
	}
}
