package main

import (
	"math"
	"testing"
)

func TestAsteroidDefaultSpawn(t *testing.T) {
	w := newTestWorld()
	a := w.Create(w.Asteroids)
	w.SpawnEntity(a, SpawnArgs{})

	if !a.Alive {
		t.Fatal("asteroid should be alive")
	}
	if a.Scale != AsteroidScaleLarge {
		t.Errorf("default scale %f, want %f", a.Scale, AsteroidScaleLarge)
	}
	if len(a.Points) != 16 {
		t.Errorf("octagon should have 8 points, got %d coords", len(a.Points))
	}
	speed := math.Hypot(a.VX, a.VY)
	if math.Abs(speed-AsteroidSpeed) > 1e-9 {
		t.Errorf("speed %f, want %f", speed, AsteroidSpeed)
	}
	onEdge := a.X <= 0 || a.X >= WorldWidth || a.Y <= 0 || a.Y >= WorldHeight
	if !onEdge {
		t.Errorf("asteroid should spawn at or beyond a world edge, got (%f, %f)", a.X, a.Y)
	}
}

func TestAsteroidFragmentation(t *testing.T) {
	w := newTestWorld()
	a := w.Create(w.Asteroids)
	w.SpawnEntity(a, SpawnArgs{X: 400, Y: 300, VX: 10, VY: 0, Scale: AsteroidScaleLarge})

	w.KillEntity(a)
	if a.Alive {
		t.Fatal("parent should be dead")
	}

	children := liveInOrder(w.Asteroids)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	speeds := []float64{
		math.Hypot(children[0].VX, children[0].VY),
		math.Hypot(children[1].VX, children[1].VY),
	}
	if speeds[0] > speeds[1] {
		speeds[0], speeds[1] = speeds[1], speeds[0]
	}
	// 3x the parent's speed of 10, split 40/60
	if math.Abs(speeds[0]-12) > 1e-9 || math.Abs(speeds[1]-18) > 1e-9 {
		t.Errorf("child speeds %v, want [12 18]", speeds)
	}
	for _, c := range children {
		if c.Scale != AsteroidScaleMedium {
			t.Errorf("child scale %f, want %f", c.Scale, AsteroidScaleMedium)
		}
		if c.X != 400 || c.Y != 300 {
			t.Errorf("child should spawn at parent position, got (%f, %f)", c.X, c.Y)
		}
	}

	if w.Explosions.liveCount() != 1 {
		t.Error("asteroid death should leave an explosion")
	}
}

func TestSmallAsteroidLeavesNoChildren(t *testing.T) {
	w := newTestWorld()
	a := w.Create(w.Asteroids)
	w.SpawnEntity(a, SpawnArgs{X: 400, Y: 300, VX: 10, VY: 0, Scale: AsteroidScaleSmall})

	w.KillEntity(a)
	if got := w.Asteroids.liveCount(); got != 0 {
		t.Errorf("small asteroid should not fragment, got %d live", got)
	}
	if w.Explosions.liveCount() != 1 {
		t.Error("small asteroid death should still leave an explosion")
	}
}

func TestMediumAsteroidYieldsSmallChildren(t *testing.T) {
	w := newTestWorld()
	a := w.Create(w.Asteroids)
	w.SpawnEntity(a, SpawnArgs{X: 400, Y: 300, VX: 10, VY: 0, Scale: AsteroidScaleMedium})

	w.KillEntity(a)
	for _, c := range liveInOrder(w.Asteroids) {
		if c.Scale != AsteroidScaleSmall {
			t.Errorf("child scale %f, want %f", c.Scale, AsteroidScaleSmall)
		}
	}
}
