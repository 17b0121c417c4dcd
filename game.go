package main

import (
	"log"
	"sync"
	"time"
)

const (
	TickRate     = 30 // simulation ticks per second
	TickDuration = time.Second / TickRate
)

// Sender delivers one encoded message to a client. Sends are fire and
// forget: a slow or closed connection drops messages, never blocks or
// fails the tick.
type Sender interface {
	Send(data []byte)
}

// Game is the single authoritative room. The mutex serializes the tick and
// all network callbacks, so world mutation happens one turn at a time.
type Game struct {
	mu      sync.Mutex
	world   *World
	senders map[int]Sender // playerID -> connection
	stats   *Analytics     // nil when stats are disabled
	start   time.Time
	stop    chan struct{}
	running bool
}

// NewGame creates the game and its world, wiring itself in as the world's
// event sink.
func NewGame(stats *Analytics) *Game {
	g := &Game{
		senders: make(map[int]Sender),
		stats:   stats,
		start:   time.Now(),
		stop:    make(chan struct{}),
	}
	g.world = NewWorld(g)
	return g
}

// Run drives the fixed-cadence tick loop. The timer is re-armed after each
// tick completes, so a long tick delays the next rather than stacking.
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	timer := time.NewTimer(TickDuration)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			g.update()
			timer.Reset(TickDuration)
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the tick loop.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// update runs one tick against the wall clock. dt is whatever the clock
// says, uncapped: a scheduler stall produces one big simulation jump.
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.Step(time.Since(g.start).Seconds())
}

// Connect registers a new player and its connection. The joiner gets an
// ack, then one entitySpawned per currently-live entity so it has full
// world state before any deltas arrive; everyone else hears connected.
func (g *Game) Connect(s Sender) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.world.AddPlayer()
	g.senders[p.ID] = s

	g.send(s, PacketAck, &AckPacket{PlayerID: uint32(p.ID), Version: ProtocolVersion})
	for _, e := range g.world.LiveEntities() {
		g.send(s, PacketEntitySpawned, entitySpawnedPacket(e))
	}
	g.broadcastExcept(PacketConnected, &ConnectedPacket{PlayerID: uint32(p.ID)}, s)

	if g.stats != nil {
		g.stats.Track(EvtConnect)
		g.stats.SetConcurrentPlayers(len(g.senders))
	}
	return p
}

// Disconnect removes a player, killing their ship, and tells everyone.
func (g *Game) Disconnect(playerID int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.senders[playerID]; !ok {
		return
	}
	delete(g.senders, playerID)
	g.world.RemovePlayer(playerID)
	g.broadcast(PacketDisconnected, &DisconnectedPacket{PlayerID: uint32(playerID)})

	if g.stats != nil {
		g.stats.Track(EvtDisconnect)
		g.stats.SetConcurrentPlayers(len(g.senders))
	}
}

// HandleMessage applies one inbound client message. Anything that fails to
// decode, or any kind a client has no business sending, is ignored.
func (g *Game) HandleMessage(playerID int, data []byte) {
	kind, payload := DecodePacket(data)
	if payload == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.world.Players[playerID]
	if !ok {
		return
	}
	switch kind {
	case PacketButtonDown:
		p.HandleButton(Button(payload.(*ButtonPacket).Button), true)
	case PacketButtonUp:
		p.HandleButton(Button(payload.(*ButtonPacket).Button), false)
	}
}

// Counts reports connected players and live entities, for /healthz.
func (g *Game) Counts() (players, entities int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.senders), len(g.world.LiveEntities())
}

// --- WorldEvents: the world's broadcast hook ---

func (g *Game) EntitySpawned(e *Entity) {
	g.broadcast(PacketEntitySpawned, entitySpawnedPacket(e))
	if g.stats != nil && e.Type == g.world.Bullets {
		g.stats.Track(EvtBulletFired)
	}
}

func (g *Game) EntityDied(e *Entity) {
	g.broadcast(PacketEntityDied, &EntityDiedPacket{EntityID: uint32(e.ID)})
	if g.stats != nil {
		switch e.Type {
		case g.world.Asteroids:
			g.stats.Track(EvtAsteroidDestroyed)
		case g.world.Ships:
			g.stats.Track(EvtShipDestroyed)
		}
	}
}

func (g *Game) EntityMoved(e *Entity) {
	g.broadcast(PacketEntity, entityPacket(e))
}

func (g *Game) EntityReshaped(e *Entity) {
	g.broadcast(PacketEntityPoints, &EntityPointsPacket{EntityID: uint32(e.ID), Points: e.Points})
}

func (g *Game) ShipReady(p *Player, e *Entity) {
	if s, ok := g.senders[p.ID]; ok {
		g.send(s, PacketAckShip, &AckShipPacket{PlayerID: uint32(p.ID), EntityID: uint32(e.ID)})
	}
}

// --- fan-out ---

// send encodes and delivers one message to one connection. An encode
// failure here is a catalogue bug, not a network condition.
func (g *Game) send(s Sender, kind PacketKind, payload interface{}) {
	data, err := EncodePacket(kind, payload)
	if err != nil {
		log.Panicf("encode packet %d: %v", kind, err)
	}
	s.Send(data)
}

func (g *Game) broadcast(kind PacketKind, payload interface{}) {
	g.broadcastExcept(kind, payload, nil)
}

// broadcastExcept fans a message out to every connection except the given
// one, compared by identity rather than player id.
func (g *Game) broadcastExcept(kind PacketKind, payload interface{}, except Sender) {
	data, err := EncodePacket(kind, payload)
	if err != nil {
		log.Panicf("encode packet %d: %v", kind, err)
	}
	for _, s := range g.senders {
		if s == except {
			continue
		}
		s.Send(data)
	}
}
