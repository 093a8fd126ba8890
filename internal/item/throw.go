package item

import (
	"fmt"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/geometry"
)

// ThrowRange is how far thrower can lob an item, in Chebyshev distance.
// Strength stretches or shrinks the base reach but a throw always carries at
// least two tiles.
func ThrowRange(w *ecs.World, thrower ecs.EntityID) int {
	bonus := component.Bonus(effect.EffectiveStats(w, thrower).Strength)
	return max(2, 5+bonus)
}

// Throw hurls itemID at the tile (tx, ty). A direct hit applies the item's
// effect to the occupant; items with a blast radius splash every actor in the
// Chebyshev disc around the impact tile; liquids that miss shatter into a
// ground pool. The item is consumed either way. The returned messages narrate
// the impact in order; ok reports whether the item could be thrown at all.
func Throw(w *ecs.World, thrower, itemID ecs.EntityID, tx, ty int, g geometry.Grid) ([]string, bool) {
	c := w.Get(itemID, CConsumable)
	if c == nil {
		return []string{"That cannot be thrown."}, false
	}
	cons := c.(Consumable)
	name := displayName(w, itemID)

	var msgs []string
	hit := actorAt(w, tx, ty)

	switch {
	case cons.Radius > 0:
		msgs = append(msgs, fmt.Sprintf("The %s bursts!", name))
		for _, p := range geometry.TilesInRadius(tx, ty, cons.Radius, g) {
			target := actorAt(w, p.X, p.Y)
			if target == ecs.NilEntity {
				continue
			}
			result := effect.Apply(w, target, EffectFrom(cons, name))
			msgs = append(msgs, fmt.Sprintf("%s: %s", nameOf(w, target), result))
		}

	case hit != ecs.NilEntity:
		result := effect.Apply(w, hit, EffectFrom(cons, name))
		msgs = append(msgs, fmt.Sprintf("The %s hits %s: %s", name, nameOf(w, hit), result))

	case cons.CreatesPool:
		effect.CreatePool(w, tx, ty, cons.Kind, cons.Power, thrower, cons.Duration)
		msgs = append(msgs, fmt.Sprintf("The %s shatters, spilling a pool of %s.",
			name, effect.PoolName(cons.Kind)))

	default:
		msgs = append(msgs, fmt.Sprintf("The %s lands with a thud.", name))
	}

	spendUse(w, itemID, cons)
	return msgs, true
}

// actorAt returns the actor occupying (x, y), or NilEntity. With at most one
// blocking actor per tile the first match is the only match.
func actorAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CIsActor, component.CPosition) {
		pos := w.MustGet(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

func nameOf(w *ecs.World, id ecs.EntityID) string {
	if w.Has(id, component.CIsPlayer) {
		return "you"
	}
	return displayName(w, id)
}
