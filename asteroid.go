package main

import "math"

const (
	AsteroidScaleLarge  = 3.0
	AsteroidScaleMedium = 2.0
	AsteroidScaleSmall  = 1.0

	AsteroidSpeed      = 48.0 // units/s at spawn, any heading
	asteroidBaseRadius = 16.0 // octagon template size before scaling

	// On death the two children share 3x the parent's speed, split 40/60,
	// each within half a radian of the reversed parent heading.
	asteroidChildSpeedScale = 3.0
	asteroidHeadingJitter   = 0.5
)

// asteroidSpawn fills in anything the caller left out: a lumpy octagon, a
// position on a random world edge, and a random heading at AsteroidSpeed.
func asteroidSpawn(w *World, e *Entity, args SpawnArgs) {
	if args.Scale == 0 {
		args.Scale = AsteroidScaleLarge
	}
	if args.Points == nil {
		args.Points = w.asteroidPoints()
	}
	if args.X == 0 && args.Y == 0 {
		r := asteroidBaseRadius * args.Scale
		switch int(w.randFloat() * 4) {
		case 0:
			args.X, args.Y = -r, w.randFloat()*WorldHeight
		case 1:
			args.X, args.Y = WorldWidth+r, w.randFloat()*WorldHeight
		case 2:
			args.X, args.Y = w.randFloat()*WorldWidth, -r
		default:
			args.X, args.Y = w.randFloat()*WorldWidth, WorldHeight+r
		}
	}
	if args.VX == 0 && args.VY == 0 {
		heading := w.randFloat() * 2 * math.Pi
		args.VX = math.Cos(heading) * AsteroidSpeed
		args.VY = math.Sin(heading) * AsteroidSpeed
	}
	w.baseSpawn(e, args)
}

// asteroidPoints builds the octagon template: eight points at 45° steps,
// the four odd ones pushed to a random radius between 2/6 and 4/6 of the
// template circle.
func (w *World) asteroidPoints() []float64 {
	points := make([]float64, 0, 16)
	for i := 0; i < 8; i++ {
		r := asteroidBaseRadius * 3 / 6
		if i%2 == 1 {
			r = asteroidBaseRadius * (2 + w.randFloat()*2) / 6
		}
		a := float64(i) * math.Pi / 4
		points = append(points, math.Cos(a)*r, math.Sin(a)*r)
	}
	return points
}

// asteroidDie leaves an explosion behind and, while there is a smaller
// size bucket to fall into, breaks into two faster children thrown back
// roughly the way the parent came.
func asteroidDie(w *World, e *Entity) {
	w.SpawnEntity(w.Create(w.Explosions), SpawnArgs{X: e.X, Y: e.Y, Scale: e.Scale})

	if e.Scale-1 >= AsteroidScaleSmall {
		speed := math.Hypot(e.VX, e.VY) * asteroidChildSpeedScale
		reversed := math.Atan2(e.VY, e.VX) + math.Pi
		split := 0.4
		for i := 0; i < 2; i++ {
			heading := reversed + (w.randFloat()-0.5)*2*asteroidHeadingJitter
			child := w.Create(w.Asteroids)
			w.SpawnEntity(child, SpawnArgs{
				X:     e.X,
				Y:     e.Y,
				VX:    math.Cos(heading) * speed * split,
				VY:    math.Sin(heading) * speed * split,
				Scale: e.Scale - 1,
			})
			split = 0.6
		}
	}

	w.baseDie(e)
}
