package ecs

import (
	"fmt"
	"sort"
)

// World is the central entity registry, component store, and resource holder.
// It is not safe for concurrent use; the scheduler runs every system on one
// goroutine.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	resources  map[ResourceType]Resource
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		resources:  make(map[ResourceType]Resource),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity, replacing any existing component of
// the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// MustGet returns the component of the given type for entity id, panicking if
// it is absent. Use it only after querying: a miss here is a wiring bug
// (wrong phase registration, missing factory call), not a data condition.
func (w *World) MustGet(id EntityID, t ComponentType) Component {
	c := w.Get(id, t)
	if c == nil {
		panic(fmt.Sprintf("ecs: entity %d missing component type %d", id, t))
	}
	return c
}

// Remove detaches a component from an entity. Removing an absent component is
// a no-op.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// sorted by ID. With no arguments it returns every alive entity. The sort
// keeps system iteration deterministic from frame to frame.
func (w *World) Query(types ...ComponentType) []EntityID {
	var result []EntityID

	if len(types) == 0 {
		for id, ok := range w.alive {
			if ok {
				result = append(result, id)
			}
		}
		sortIDs(result)
		return result
	}

	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sortIDs(result)
	return result
}

// AddResource installs a singleton resource, replacing any prior instance of
// the same type.
func (w *World) AddResource(r Resource) {
	w.resources[r.ResourceType()] = r
}

// Resource returns the resource of the given type, or nil.
func (w *World) Resource(t ResourceType) Resource {
	return w.resources[t]
}

// MustResource returns the resource of the given type, panicking if it was
// never registered. Like MustGet, a miss signals broken startup wiring.
func (w *World) MustResource(t ResourceType) Resource {
	r := w.resources[t]
	if r == nil {
		panic(fmt.Sprintf("ecs: missing resource type %d", t))
	}
	return r
}

// HasResource reports whether a resource of the given type is registered.
func (w *World) HasResource(t ResourceType) bool {
	return w.resources[t] != nil
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
