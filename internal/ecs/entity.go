package ecs

// EntityID uniquely identifies an entity in the world. IDs are minted
// monotonically and never reused, even after the entity is destroyed.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
//
// Type values live in a single flat registry so that no two packages collide:
// internal/component owns 1–15, internal/effect owns 16–19, and internal/item
// owns 20–29.
type ComponentType uint8

// Component is implemented by every data struct attached to entities.
type Component interface {
	Type() ComponentType
}

// ResourceType keys the world's singleton resource slots.
type ResourceType uint8

// Resource is implemented by process-wide singletons held in the world:
// the game map, the message log, the renderer.
type Resource interface {
	ResourceType() ResourceType
}
