package main

import "math"

const (
	ShipThrust      = 120.0 // units/s² along the facing
	ShipMaxSpeed    = 320.0
	ShipTurnSpeed   = 270.0 // degrees/s
	ShipBulletTimer = 0.25  // seconds between shots
	ShipNoseOffset  = 10.0  // bullet spawn distance along the facing

	// Collision radius forgiveness: the ship's bounding circle is shrunk
	// versus its geometric radius so near misses feel like misses.
	shipRadiusForgiveness = 0.8

	shipDebrisVelocityInherit = 0.2
	shipDebrisKickMin         = 10.0
	shipDebrisKickMax         = 50.0
)

// shipPoints faces up (-Y) at angle 0, nose ShipNoseOffset units out.
var shipPoints = []float64{0, -10, 6, 10, 3, 7, -3, 7, -6, 10}

func shipSpawn(w *World, e *Entity, args SpawnArgs) {
	if args.X == 0 && args.Y == 0 {
		args.X = WorldWidth / 2
		args.Y = WorldHeight / 4
	}
	if args.Points == nil {
		args.Points = shipPoints
	}
	e.BulletTimer = 0
	e.Thrusting = false
	w.baseSpawn(e, args)
}

// shipDie blows the ship apart: a center explosion, plus one debris entity
// per edge of the current rotated outline, each flung with a fraction of
// the ship's velocity and a random kick. The owning player is notified
// before the back-reference is cleared.
func shipDie(w *World, e *Entity) {
	w.SpawnEntity(w.Create(w.Explosions), SpawnArgs{X: e.X, Y: e.Y, Scale: e.Scale})

	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	n := len(e.Points) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x1 := e.Points[i*2]*cos - e.Points[i*2+1]*sin
		y1 := e.Points[i*2]*sin + e.Points[i*2+1]*cos
		x2 := e.Points[j*2]*cos - e.Points[j*2+1]*sin
		y2 := e.Points[j*2]*sin + e.Points[j*2+1]*cos
		heading := w.randFloat() * 2 * math.Pi
		kick := shipDebrisKickMin + w.randFloat()*(shipDebrisKickMax-shipDebrisKickMin)
		w.SpawnEntity(w.Create(w.Debris), SpawnArgs{
			X:      e.X,
			Y:      e.Y,
			VX:     e.VX*shipDebrisVelocityInherit + math.Cos(heading)*kick,
			VY:     e.VY*shipDebrisVelocityInherit + math.Sin(heading)*kick,
			Scale:  1,
			Points: []float64{x1, y1, x2, y2},
		})
	}

	if p := e.Player; p != nil && p.Ship == e {
		p.onShipDied(w)
	}
	e.Player = nil
	w.baseDie(e)
}

// shipUpdateRadius shrinks the inherited bounding radius so player
// collisions feel fairer than the raw geometry would.
func shipUpdateRadius(e *Entity) {
	e.baseUpdateRadius()
	e.Radius *= shipRadiusForgiveness
	e.RadiusSquared = e.Radius * e.Radius
}

// shipFacing returns the unit facing vector for the ship's angle.
func shipFacing(e *Entity) (float64, float64) {
	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	return sin, -cos
}

// shipFire spawns a bullet from the ship's nose unless the cooldown is
// still running. The bullet remembers its shooter so it can never hit them.
func (w *World) shipFire(e *Entity) {
	if !e.Alive || w.Time < e.BulletTimer {
		return
	}
	e.BulletTimer = w.Time + ShipBulletTimer
	fx, fy := shipFacing(e)
	b := w.Create(w.Bullets)
	w.SpawnEntity(b, SpawnArgs{
		X:  e.X + fx*ShipNoseOffset,
		Y:  e.Y + fy*ShipNoseOffset,
		VX: fx * BulletSpeed,
		VY: fy * BulletSpeed,
	})
	b.FiredBy = e
}

// shipThrust accelerates along the facing, clamping the resulting speed.
func (w *World) shipThrust(e *Entity) {
	if !e.Alive {
		return
	}
	if !e.Thrusting {
		e.Thrusting = true
		e.ThrustingStart = w.Time
	}
	fx, fy := shipFacing(e)
	e.VX += fx * ShipThrust * w.DT
	e.VY += fy * ShipThrust * w.DT
	speed := math.Hypot(e.VX, e.VY)
	if speed > ShipMaxSpeed {
		e.VX = e.VX / speed * ShipMaxSpeed
		e.VY = e.VY / speed * ShipMaxSpeed
	}
}

func (w *World) shipStopThrust(e *Entity) {
	e.Thrusting = false
}

func (w *World) shipTurnLeft(e *Entity) {
	e.Angle = WrapAngle(e.Angle - ShipTurnSpeed*w.DT)
}

func (w *World) shipTurnRight(e *Entity) {
	e.Angle = WrapAngle(e.Angle + ShipTurnSpeed*w.DT)
}
