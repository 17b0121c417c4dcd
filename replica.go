package main

import "errors"

// ErrVersionMismatch is reported when the server speaks a newer protocol
// than this build. The caller decides what to do (typically force a
// reload); the session should be considered dead.
var ErrVersionMismatch = errors.New("server protocol version is newer than client")

// Replica is the client-side mirror of the server's world. It applies
// decoded server messages to a local, non-authoritative World and ticks
// entity movement between messages for smoothing. Ids come off the wire,
// so the registry's byId map is the source of truth here, not slot order.
type Replica struct {
	PlayerID int
	ShipID   int // -1 until the server acks a ship

	world      *World
	players    map[int]bool // other connected players, by id
	versionErr error
}

func NewReplica() *Replica {
	return &Replica{
		ShipID:  -1,
		world:   NewWorld(nil),
		players: make(map[int]bool),
	}
}

// World exposes the replica's entity state for rendering.
func (r *Replica) World() *World {
	return r.world
}

// Ship returns the local player's ship entity, or nil before the first
// ackShip.
func (r *Replica) Ship() *Entity {
	if r.ShipID < 0 {
		return nil
	}
	return r.world.EntityByID(r.ShipID)
}

// Err returns the sticky session-fatal condition, if any.
func (r *Replica) Err() error {
	return r.versionErr
}

// Tick advances local entity movement to the absolute time now.
func (r *Replica) Tick(now float64) {
	r.world.Advance(now)
}

// Apply decodes one server message and applies it to the local world.
// Unknown kinds, unknown entity tags, and malformed payloads are all
// ignored — that is what keeps old clients compatible with newer servers,
// short of a version bump. The returned error is only ever the fatal
// version mismatch.
func (r *Replica) Apply(data []byte) error {
	kind, payload := DecodePacket(data)
	if payload == nil {
		return nil
	}

	switch kind {
	case PacketAck:
		pkt := payload.(*AckPacket)
		r.PlayerID = int(pkt.PlayerID)
		if pkt.Version > ProtocolVersion {
			r.versionErr = ErrVersionMismatch
			return r.versionErr
		}

	case PacketAckShip:
		r.ShipID = int(payload.(*AckShipPacket).EntityID)

	case PacketConnected:
		r.players[int(payload.(*ConnectedPacket).PlayerID)] = true

	case PacketDisconnected:
		delete(r.players, int(payload.(*DisconnectedPacket).PlayerID))

	case PacketEntitySpawned:
		pkt := payload.(*EntitySpawnedPacket)
		e := r.world.CreateByTag(int(pkt.Type), int(pkt.EntityID))
		if e == nil {
			return nil // entity kind from the future, skip it
		}
		r.world.SpawnEntity(e, SpawnArgs{
			X:      pkt.X,
			Y:      pkt.Y,
			VX:     pkt.VX,
			VY:     pkt.VY,
			Angle:  pkt.Angle,
			Scale:  pkt.Scale,
			Points: pkt.Points,
		})

	case PacketEntity:
		pkt := payload.(*EntityPacket)
		e := r.world.EntityByID(int(pkt.EntityID))
		if e == nil {
			return nil
		}
		e.X = pkt.X
		e.Y = pkt.Y
		e.VX = pkt.VX
		e.VY = pkt.VY
		e.Angle = pkt.Angle
		if pkt.Scale != e.Scale {
			r.world.SetEntityScale(e, pkt.Scale)
		}

	case PacketEntityDied:
		pkt := payload.(*EntityDiedPacket)
		if e := r.world.EntityByID(int(pkt.EntityID)); e != nil && e.Alive {
			// Base die only: the side effects of a death (explosions,
			// child asteroids, debris) arrive as their own spawn
			// messages, never run locally.
			r.world.baseDie(e)
		}

	case PacketEntityPoints:
		pkt := payload.(*EntityPointsPacket)
		if e := r.world.EntityByID(int(pkt.EntityID)); e != nil {
			r.world.SetEntityPoints(e, pkt.Points, 0, false)
		}
	}
	return nil
}

// OtherPlayers returns the ids of the other connected players.
func (r *Replica) OtherPlayers() []int {
	ids := make([]int, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	return ids
}

// ButtonMessage encodes a button transition for sending to the server.
func ButtonMessage(b Button, down bool) ([]byte, error) {
	kind := PacketButtonUp
	if down {
		kind = PacketButtonDown
	}
	return EncodePacket(kind, &ButtonPacket{Button: uint8(b)})
}
