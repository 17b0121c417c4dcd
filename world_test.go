package main

import "testing"

func TestStepSeedsAsteroidBatch(t *testing.T) {
	w := newTestWorld()
	w.Step(0.1)

	live := liveInOrder(w.Asteroids)
	if len(live) != AsteroidBatchSize {
		t.Fatalf("want %d asteroids after first step, got %d", AsteroidBatchSize, len(live))
	}
	seen := map[int]bool{}
	for _, a := range live {
		if seen[a.ID] {
			t.Errorf("duplicate asteroid id %d", a.ID)
		}
		seen[a.ID] = true
		if a.Scale != AsteroidScaleLarge {
			t.Errorf("batch asteroid scale = %v, want %v", a.Scale, AsteroidScaleLarge)
		}
	}
}

func TestStepReseedsOnlyWhenFieldEmpty(t *testing.T) {
	w := newTestWorld()
	w.Step(0.1)
	w.Step(0.2)
	if n := w.Asteroids.liveCount(); n != AsteroidBatchSize {
		t.Errorf("second step should not add asteroids, got %d", n)
	}

	for _, a := range liveInOrder(w.Asteroids) {
		a.Scale = AsteroidScaleSmall // no children on death
		w.KillEntity(a)
	}
	w.Step(0.3)
	if n := w.Asteroids.liveCount(); n != AsteroidBatchSize {
		t.Errorf("empty field should reseed %d asteroids, got %d", AsteroidBatchSize, n)
	}
}

func TestPlayerGetsShipOnFirstStep(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer()
	if p.Ship != nil {
		t.Fatal("ship should not exist before the first step")
	}
	w.Step(0.1)
	if p.Ship == nil || !p.Ship.Alive {
		t.Fatal("player should receive a live ship on the first step")
	}
	if p.Ship.Player != p {
		t.Error("ship should point back at its player")
	}
}

func TestPlayerRespawnDelay(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer()
	w.Step(0.1)
	died := w.Time
	w.KillEntity(p.Ship)
	if p.Ship != nil {
		t.Fatal("player should be detached from a dead ship")
	}

	w.Step(died + PlayerRespawnDelay - 0.1)
	if p.Ship != nil {
		t.Error("ship respawned before the delay elapsed")
	}
	// Clear the field so the respawned ship cannot be clipped by an
	// asteroid that drifted toward the spawn point.
	for _, a := range liveInOrder(w.Asteroids) {
		a.Scale = AsteroidScaleSmall
		w.KillEntity(a)
	}
	w.Step(died + PlayerRespawnDelay + 0.1)
	if p.Ship == nil {
		t.Error("ship should respawn once the delay elapses")
	}
}

func TestPlayerIDsNeverReused(t *testing.T) {
	w := newTestWorld()
	p1 := w.AddPlayer()
	p2 := w.AddPlayer()
	w.RemovePlayer(p1.ID)
	p3 := w.AddPlayer()
	if p3.ID == p1.ID || p3.ID == p2.ID {
		t.Errorf("player ids must be unique for the world's lifetime: %d, %d, %d",
			p1.ID, p2.ID, p3.ID)
	}
}

func TestRemovePlayerKillsShip(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer()
	w.Step(0.1)
	ship := p.Ship
	w.RemovePlayer(p.ID)
	if ship.Alive {
		t.Error("removing a player should kill their ship")
	}
	if _, ok := w.Players[p.ID]; ok {
		t.Error("player should be gone from the roster")
	}
}

func TestButtonsDriveShip(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer()
	w.Step(0.1)
	ship := p.Ship
	angle := ship.Angle

	p.HandleButton(ButtonRight, true)
	w.Step(0.2)
	if ship.Angle == angle {
		t.Error("held right button should turn the ship")
	}
	p.HandleButton(ButtonRight, false)

	p.HandleButton(ButtonFire, true)
	w.Step(0.3)
	if w.Bullets.liveCount() == 0 {
		t.Error("held fire button should spawn a bullet")
	}
}
