package main

import "math"

const (
	ExplosionTime          = 1.0
	ExplosionParticleCount = 16
	explosionParticleMinV  = 2.0
	explosionParticleMaxV  = 4.0
)

// explosionSpawn pins the explosion in place — whatever velocity and angle
// the caller passed are discarded — and scatters a fresh set of particles.
// The transmitted geometry is just the degenerate spawn point; clients
// redraw explosions from their own particle set, fading with
// (timeLeft/explosionTime)².
func explosionSpawn(w *World, e *Entity, args SpawnArgs) {
	args.VX = 0
	args.VY = 0
	args.Angle = 0
	args.Points = []float64{args.X, args.Y}
	e.TimeLeft = ExplosionTime
	if e.Particles == nil {
		e.Particles = make([]Particle, ExplosionParticleCount)
	}
	for i := range e.Particles {
		heading := w.randFloat() * 2 * math.Pi
		speed := explosionParticleMinV + w.randFloat()*(explosionParticleMaxV-explosionParticleMinV)
		e.Particles[i] = Particle{
			VX: math.Cos(heading) * speed,
			VY: math.Sin(heading) * speed,
		}
	}
	w.baseSpawn(e, args)
}

// explosionUpdate integrates each particle and burns lifetime. The base
// update still runs so the server ticks and broadcasts explosions like any
// other entity, even though clients render them independently.
func explosionUpdate(w *World, e *Entity) {
	if !e.Alive {
		return
	}
	e.TimeLeft -= w.DT
	if e.TimeLeft <= 0 {
		w.KillEntity(e)
		return
	}
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX * w.DT
		p.Y += p.VY * w.DT
	}
	w.baseUpdate(e)
}
