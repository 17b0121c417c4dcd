package main

// Button is a client input control.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonThrust
	ButtonFire
)

const PlayerRespawnDelay = 5.0 // seconds between losing a ship and getting a new one

// Player is one connected session: its held buttons, its ship (if any),
// and the respawn timer.
type Player struct {
	ID           int
	Buttons      map[Button]bool
	Ship         *Entity
	NextShipTime float64
}

func NewPlayer(id int) *Player {
	return &Player{
		ID:      id,
		Buttons: make(map[Button]bool),
	}
}

// HandleButton records a button transition from the network.
func (p *Player) HandleButton(b Button, down bool) {
	p.Buttons[b] = down
}

// Update applies the held buttons to the player's ship each tick, or — once
// the respawn delay has passed — spawns a fresh ship and announces it to
// the player directly.
func (p *Player) Update(w *World) {
	if p.Ship != nil && p.Ship.Alive {
		ship := p.Ship
		if p.Buttons[ButtonLeft] {
			w.shipTurnLeft(ship)
		}
		if p.Buttons[ButtonRight] {
			w.shipTurnRight(ship)
		}
		if p.Buttons[ButtonThrust] {
			w.shipThrust(ship)
		} else {
			// Explicit stop so the flame flag clears when the key is up.
			w.shipStopThrust(ship)
		}
		if p.Buttons[ButtonFire] {
			w.shipFire(ship)
		}
		return
	}

	if w.Time < p.NextShipTime {
		return
	}
	ship := w.Create(w.Ships)
	ship.Player = p
	w.SpawnEntity(ship, SpawnArgs{})
	p.Ship = ship
	w.shipReady(p, ship)
}

// onShipDied detaches the ship and starts the respawn timer.
func (p *Player) onShipDied(w *World) {
	p.Ship = nil
	p.NextShipTime = w.Time + PlayerRespawnDelay
}
