package main

const (
	WorldWidth  = 1280.0
	WorldHeight = 720.0

	AsteroidBatchSize = 8
)

// WorldEvents receives simulation events as they happen. The authoritative
// Game implements it by broadcasting wire messages; replicas run without
// one.
type WorldEvents interface {
	EntitySpawned(e *Entity)
	EntityDied(e *Entity)
	EntityMoved(e *Entity)
	EntityReshaped(e *Entity)
	ShipReady(p *Player, e *Entity)
}

// World owns the entity registry, the connected players, and the
// simulation clock. All mutation happens from a single tick/callback
// context; the World itself holds no locks.
type World struct {
	Time float64 // absolute seconds
	DT   float64 // seconds since the previous tick, uncapped

	Asteroids  *EntityType
	Bullets    *EntityType
	Debris     *EntityType
	Explosions *EntityType
	Ships      *EntityType

	Players map[int]*Player

	types       []*EntityType
	typesByName map[string]*EntityType
	all         []*Entity
	byID        map[int]*Entity

	nextPlayerID int
	rng          xorshift64
	events       WorldEvents
}

// NewWorld creates a world with the standard entity kinds registered. The
// registration order fixes the wire tags, so it must match on both sides.
func NewWorld(events WorldEvents) *World {
	w := &World{
		Players:     make(map[int]*Player),
		typesByName: make(map[string]*EntityType),
		byID:        make(map[int]*Entity),
		events:      events,
	}
	w.rng.seedFromEntropy()
	w.Asteroids = w.DefineType("asteroid", Behavior{Spawn: asteroidSpawn, Die: asteroidDie})
	w.Bullets = w.DefineType("bullet", Behavior{Spawn: bulletSpawn, Die: bulletDie, Update: bulletUpdate})
	w.Debris = w.DefineType("debris", Behavior{Spawn: debrisSpawn, Update: debrisUpdate})
	w.Explosions = w.DefineType("explosion", Behavior{Spawn: explosionSpawn, Update: explosionUpdate})
	w.Ships = w.DefineType("ship", Behavior{Spawn: shipSpawn, Die: shipDie, UpdateRadius: shipUpdateRadius})
	return w
}

// SeedRand reseeds the world's PRNG, for deterministic tests.
func (w *World) SeedRand(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	w.rng.state = seed
}

func (w *World) randFloat() float64 {
	return w.rng.Float()
}

// Step advances the authoritative simulation to the absolute time now:
// asteroid batch maintenance, player input, entity movement, then the
// collision pass.
func (w *World) Step(now float64) {
	w.DT = now - w.Time
	w.Time = now

	if w.Asteroids.liveCount() == 0 {
		for i := 0; i < AsteroidBatchSize; i++ {
			w.SpawnEntity(w.Create(w.Asteroids), SpawnArgs{})
		}
	}

	for _, p := range w.Players {
		p.Update(w)
	}

	// Entities registered before this point — including ships and bullets
	// spawned by the player phase just above — get exactly one update.
	for _, e := range w.all {
		w.UpdateEntity(e)
	}

	w.collide()
}

// Advance ticks entity movement only. Replicas use it to smooth between
// server messages; spawning, input, and collisions stay server-side.
func (w *World) Advance(now float64) {
	w.DT = now - w.Time
	w.Time = now
	for _, e := range w.all {
		w.UpdateEntity(e)
	}
}

// AddPlayer registers a new player session. Player ids count up and are
// never reused.
func (w *World) AddPlayer() *Player {
	w.nextPlayerID++
	p := NewPlayer(w.nextPlayerID)
	w.Players[p.ID] = p
	return p
}

// RemovePlayer drops a player, killing their ship first so the death is
// broadcast before the session disappears.
func (w *World) RemovePlayer(id int) {
	p, ok := w.Players[id]
	if !ok {
		return
	}
	if p.Ship != nil {
		w.KillEntity(p.Ship)
	}
	delete(w.Players, id)
}

// LiveEntities returns all currently-live entities in id order.
func (w *World) LiveEntities() []*Entity {
	live := make([]*Entity, 0, len(w.all))
	for _, e := range w.all {
		if e.Alive {
			live = append(live, e)
		}
	}
	return live
}

// EntityCount returns the number of allocated entity slots, live or dead.
func (w *World) EntityCount() int {
	return len(w.all)
}

func (w *World) entitySpawned(e *Entity) {
	if w.events != nil {
		w.events.EntitySpawned(e)
	}
}

func (w *World) entityDied(e *Entity) {
	if w.events != nil {
		w.events.EntityDied(e)
	}
}

func (w *World) entityMoved(e *Entity) {
	if w.events != nil {
		w.events.EntityMoved(e)
	}
}

func (w *World) entityReshaped(e *Entity) {
	if w.events != nil {
		w.events.EntityReshaped(e)
	}
}

func (w *World) shipReady(p *Player, e *Entity) {
	if w.events != nil {
		w.events.ShipReady(p, e)
	}
}
