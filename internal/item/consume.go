package item

import (
	"fmt"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
)

// Consume has actor drink or read itemID, applying its effect to the actor.
// One use is spent; the item is destroyed when none remain. The returned
// message describes the outcome and ok reports whether the item was usable.
func Consume(w *ecs.World, actor, itemID ecs.EntityID) (string, bool) {
	c := w.Get(itemID, CConsumable)
	if c == nil {
		return "That cannot be used.", false
	}
	cons := c.(Consumable)
	name := displayName(w, itemID)

	eff := EffectFrom(cons, name)
	result := effect.Apply(w, actor, eff)

	spendUse(w, itemID, cons)
	return fmt.Sprintf("You use the %s: %s", name, result), true
}

func spendUse(w *ecs.World, itemID ecs.EntityID, c Consumable) {
	c.Uses--
	if c.Uses <= 0 {
		w.DestroyEntity(itemID)
		return
	}
	w.Add(itemID, c)
}

func displayName(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CDrawable); c != nil {
		if d := c.(component.Drawable); d.Name != "" {
			return d.Name
		}
	}
	return "item"
}
