package main

// collide runs the pairwise collision pass. The live sets are snapshotted
// first so anything spawned by a die hook mid-pass — explosions, child
// asteroids, debris — is never tested in the same pass, even when it reuses
// a dead slot.
func (w *World) collide() {
	asteroids := liveReversed(w.Asteroids)
	bullets := liveInOrder(w.Bullets)
	ships := liveInOrder(w.Ships)

	for _, a := range asteroids {
		for _, b := range bullets {
			if !b.Alive {
				continue
			}
			if a.Overlaps(b) {
				w.KillEntity(b)
				w.KillEntity(a)
				break
			}
		}
		if !a.Alive {
			continue
		}
		for _, s := range ships {
			if !s.Alive {
				continue
			}
			if a.Overlaps(s) {
				w.KillEntity(s)
				w.KillEntity(a)
				break
			}
		}
	}

	// A bullet never hits the ship that fired it. No break here: a bullet
	// overlapping two overlapping ships registers against both.
	for _, b := range bullets {
		if !b.Alive {
			continue
		}
		for _, s := range ships {
			if !s.Alive || s == b.FiredBy {
				continue
			}
			if b.Overlaps(s) {
				w.KillEntity(b)
				w.KillEntity(s)
			}
		}
	}
}

func liveInOrder(t *EntityType) []*Entity {
	live := make([]*Entity, 0, len(t.entities))
	for _, e := range t.entities {
		if e.Alive {
			live = append(live, e)
		}
	}
	return live
}

// liveReversed returns live entities newest-first. The asteroid scan order
// decides which pair wins under multi-collision ties.
func liveReversed(t *EntityType) []*Entity {
	live := make([]*Entity, 0, len(t.entities))
	for i := len(t.entities) - 1; i >= 0; i-- {
		if t.entities[i].Alive {
			live = append(live, t.entities[i])
		}
	}
	return live
}
