package main

const (
	BulletSpeed = 192.0 // units/s, along the firing ship's facing
	BulletTime  = 2.0   // seconds of flight before burning out
)

func bulletSpawn(w *World, e *Entity, args SpawnArgs) {
	if args.Points == nil {
		args.Points = []float64{0, 0, 1, 1}
	}
	e.TimeLeft = BulletTime
	e.FiredBy = nil
	w.baseSpawn(e, args)
}

func bulletDie(w *World, e *Entity) {
	e.TimeLeft = 0
	w.baseDie(e)
}

// bulletUpdate burns lifetime, moves, then redraws the bullet as the line
// it actually traveled this tick. The reshape broadcast is suppressed
// because the regular per-tick entity message already carries the state;
// across a wrap the recorded delta spans the whole world for one frame,
// same as the source.
func bulletUpdate(w *World, e *Entity) {
	if !e.Alive {
		return
	}
	e.TimeLeft -= w.DT
	if e.TimeLeft < 0 {
		w.KillEntity(e)
		return
	}
	ox, oy := e.X, e.Y
	w.baseUpdate(e)
	w.SetEntityPoints(e, []float64{0, 0, e.X - ox, e.Y - oy}, 0, false)
}
