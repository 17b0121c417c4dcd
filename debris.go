package main

const (
	DebrisMinTime = 1.0
	DebrisMaxTime = 5.0
)

// Debris is purely cosmetic: a ship fragment that drifts for a few seconds
// and fades out. It still lives in the shared registry so the wire protocol
// and bookkeeping stay uniform.

func debrisSpawn(w *World, e *Entity, args SpawnArgs) {
	e.TimeLeft = DebrisMinTime + w.randFloat()*(DebrisMaxTime-DebrisMinTime)
	w.baseSpawn(e, args)
}

func debrisUpdate(w *World, e *Entity) {
	if !e.Alive {
		return
	}
	e.TimeLeft -= w.DT
	if e.TimeLeft <= 0 {
		w.KillEntity(e)
		return
	}
	w.baseUpdate(e)
}
