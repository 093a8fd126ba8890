// Package item implements consumable items: their templates, drinking them,
// and throwing them at tiles or actors.
package item

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
)

// Component type keys owned by this package (registry range 20–29).
const (
	CConsumable  ecs.ComponentType = 20
	CInInventory ecs.ComponentType = 21
	COnGround    ecs.ComponentType = 22
)

// Consumable is an item that can be drunk or thrown for an effect. Liquids
// (CreatesPool) leave a ground pool when they shatter on an empty tile.
type Consumable struct {
	Kind          effect.Kind
	Power         int
	Duration      int
	StatModifiers map[component.Stat]int
	CreatesPool   bool
	Radius        int
	Uses          int
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

// InInventory marks an item as carried by Owner. Carried items have no
// Position.
type InInventory struct {
	Owner ecs.EntityID
}

func (InInventory) Type() ecs.ComponentType { return CInInventory }

// OnGround marks an item lying on the map, available for pickup.
type OnGround struct{}

func (OnGround) Type() ecs.ComponentType { return COnGround }

// EffectFrom converts a Consumable's payload into an Effect carrying the
// item's name.
func EffectFrom(c Consumable, name string) effect.Effect {
	mods := make(map[component.Stat]int, len(c.StatModifiers))
	for k, v := range c.StatModifiers {
		mods[k] = v
	}
	return effect.Effect{
		Name:          name,
		Kind:          c.Kind,
		Power:         c.Power,
		Duration:      c.Duration,
		Radius:        c.Radius,
		StatModifiers: mods,
	}
}
