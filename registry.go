package main

// Behavior is the overridable behavior table for an entity kind. Nil
// entries fall back to the base behavior in entity.go.
type Behavior struct {
	Spawn        func(w *World, e *Entity, args SpawnArgs)
	Die          func(w *World, e *Entity)
	Update       func(w *World, e *Entity)
	UpdateRadius func(e *Entity)
}

// EntityType is a registered entity kind. The wire tag equals registration
// order and must match on both ends of the connection.
type EntityType struct {
	Name     string
	Tag      int
	Behavior Behavior

	// entities is every entity ever created of this kind, alive or dead.
	// Dead slots are reused by Create and the list doubles as the
	// collision iteration set.
	entities []*Entity
}

// DefineType registers an entity kind, assigning the next wire tag.
// Re-registering a name returns the existing type unchanged.
func (w *World) DefineType(name string, behavior Behavior) *EntityType {
	if t, ok := w.typesByName[name]; ok {
		return t
	}
	t := &EntityType{Name: name, Tag: len(w.types), Behavior: behavior}
	w.types = append(w.types, t)
	w.typesByName[name] = t
	return t
}

// TypeByTag returns the kind registered with the given wire tag, or nil for
// unknown tags.
func (w *World) TypeByTag(tag int) *EntityType {
	if tag < 0 || tag >= len(w.types) {
		return nil
	}
	return w.types[tag]
}

// Create returns an entity of the given kind, dead and ready to spawn. A
// dead slot of the same kind is reused when one exists, keeping the entity
// population bounded; otherwise a new slot is appended with the next
// sequential id.
func (w *World) Create(t *EntityType) *Entity {
	if e := t.findDead(); e != nil {
		return e
	}
	e := &Entity{ID: len(w.all), Type: t, Scale: 1}
	w.all = append(w.all, e)
	w.byID[e.ID] = e
	t.entities = append(t.entities, e)
	return e
}

// CreateWithID returns the entity with the given id, constructing a slot
// for it when none exists yet. This is the replica path: ids arrive from
// the network instead of being allocated locally.
func (w *World) CreateWithID(t *EntityType, id int) *Entity {
	if e, ok := w.byID[id]; ok {
		return e
	}
	e := &Entity{ID: id, Type: t, Scale: 1}
	w.all = append(w.all, e)
	w.byID[id] = e
	t.entities = append(t.entities, e)
	return e
}

// CreateByTag dispatches CreateWithID through the wire tag. Unknown tags
// return nil rather than an error so replicas tolerate entity kinds from
// newer servers.
func (w *World) CreateByTag(tag, id int) *Entity {
	t := w.TypeByTag(tag)
	if t == nil {
		return nil
	}
	return w.CreateWithID(t, id)
}

// EntityByID returns the entity with the given id, or nil.
func (w *World) EntityByID(id int) *Entity {
	return w.byID[id]
}

// findDead scans for a reusable dead slot. O(n) in the kind's population,
// which stays in the tens.
func (t *EntityType) findDead() *Entity {
	for _, e := range t.entities {
		if !e.Alive {
			return e
		}
	}
	return nil
}

// liveCount returns the number of live entities of this kind.
func (t *EntityType) liveCount() int {
	n := 0
	for _, e := range t.entities {
		if e.Alive {
			n++
		}
	}
	return n
}
