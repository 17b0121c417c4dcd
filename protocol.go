package main

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ProtocolVersion is sent in the ack on connect. Clients must treat a
// newer server version as fatal to the session.
const ProtocolVersion = 2

// PacketKind tags a wire message. The tag is the first byte on the wire;
// the rest of the message is the msgpack-encoded payload struct.
type PacketKind byte

const (
	PacketAck PacketKind = iota
	PacketAckShip
	PacketConnected
	PacketDisconnected
	PacketButtonDown
	PacketButtonUp
	PacketEntity
	PacketEntityDied
	PacketEntityPoints
	PacketEntitySpawned
)

// AckPacket is unicast to a player on connect.
type AckPacket struct {
	PlayerID uint32 `msgpack:"p"`
	Version  uint32 `msgpack:"v"`
}

// AckShipPacket tells a player which entity is their new ship.
type AckShipPacket struct {
	PlayerID uint32 `msgpack:"p"`
	EntityID uint32 `msgpack:"e"`
}

// ConnectedPacket is broadcast to everyone except the joiner.
type ConnectedPacket struct {
	PlayerID uint32 `msgpack:"p"`
}

// DisconnectedPacket is broadcast to everyone.
type DisconnectedPacket struct {
	PlayerID uint32 `msgpack:"p"`
}

// ButtonPacket carries a buttonDown/buttonUp transition from the client.
type ButtonPacket struct {
	Button uint8 `msgpack:"b"`
}

// EntityPacket is the per-tick full kinematic state of one live entity.
type EntityPacket struct {
	EntityID uint32  `msgpack:"e"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	VY       float64 `msgpack:"vy"`
	Angle    float64 `msgpack:"a"`
	Scale    float64 `msgpack:"s"`
}

// EntityDiedPacket announces a death.
type EntityDiedPacket struct {
	EntityID uint32 `msgpack:"e"`
}

// EntityPointsPacket replaces an entity's geometry.
type EntityPointsPacket struct {
	EntityID uint32    `msgpack:"e"`
	Points   []float64 `msgpack:"pt"`
}

// EntitySpawnedPacket is the full spawn snapshot: broadcast on spawn, and
// unicast per live entity to a late joiner before any deltas.
type EntitySpawnedPacket struct {
	Type     uint8     `msgpack:"t"`
	EntityID uint32    `msgpack:"e"`
	X        float64   `msgpack:"x"`
	Y        float64   `msgpack:"y"`
	VX       float64   `msgpack:"vx"`
	VY       float64   `msgpack:"vy"`
	Angle    float64   `msgpack:"a"`
	Scale    float64   `msgpack:"s"`
	Points   []float64 `msgpack:"pt"`
}

// packetPayloads maps each catalogued kind to a constructor for its payload
// type. Kinds missing from this table cannot be encoded or decoded.
var packetPayloads = map[PacketKind]func() interface{}{
	PacketAck:           func() interface{} { return &AckPacket{} },
	PacketAckShip:       func() interface{} { return &AckShipPacket{} },
	PacketConnected:     func() interface{} { return &ConnectedPacket{} },
	PacketDisconnected:  func() interface{} { return &DisconnectedPacket{} },
	PacketButtonDown:    func() interface{} { return &ButtonPacket{} },
	PacketButtonUp:      func() interface{} { return &ButtonPacket{} },
	PacketEntity:        func() interface{} { return &EntityPacket{} },
	PacketEntityDied:    func() interface{} { return &EntityDiedPacket{} },
	PacketEntityPoints:  func() interface{} { return &EntityPointsPacket{} },
	PacketEntitySpawned: func() interface{} { return &EntitySpawnedPacket{} },
}

// EncodePacket marshals a payload under its kind byte. An uncatalogued kind
// is a programming error, reported as an error for the caller to treat as
// fatal rather than a runtime condition to swallow.
func EncodePacket(kind PacketKind, payload interface{}) ([]byte, error) {
	if _, ok := packetPayloads[kind]; !ok {
		return nil, fmt.Errorf("encode: unknown packet kind %d", kind)
	}
	body, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 1+len(body))
	buf[0] = byte(kind)
	copy(buf[1:], body)
	return buf, nil
}

// DecodePacket parses one wire message. Unknown kinds and malformed
// payloads yield a nil payload — "no message" — so garbage from the network
// never propagates past the decode boundary.
func DecodePacket(data []byte) (PacketKind, interface{}) {
	if len(data) < 1 {
		return 0, nil
	}
	kind := PacketKind(data[0])
	newPayload, ok := packetPayloads[kind]
	if !ok {
		return 0, nil
	}
	payload := newPayload()
	if err := msgpack.Unmarshal(data[1:], payload); err != nil {
		return 0, nil
	}
	return kind, payload
}

// entityPacket builds the per-tick state message for an entity.
func entityPacket(e *Entity) *EntityPacket {
	return &EntityPacket{
		EntityID: uint32(e.ID),
		X:        e.X,
		Y:        e.Y,
		VX:       e.VX,
		VY:       e.VY,
		Angle:    e.Angle,
		Scale:    e.Scale,
	}
}

// entitySpawnedPacket builds the full spawn snapshot for an entity.
func entitySpawnedPacket(e *Entity) *EntitySpawnedPacket {
	return &EntitySpawnedPacket{
		Type:     uint8(e.Type.Tag),
		EntityID: uint32(e.ID),
		X:        e.X,
		Y:        e.Y,
		VX:       e.VX,
		VY:       e.VY,
		Angle:    e.Angle,
		Scale:    e.Scale,
		Points:   e.Points,
	}
}
