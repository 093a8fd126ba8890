package system

import (
	"fmt"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// GroundPools processes ground pools. Runs in the resolution phase with the
// same turn gate as EffectTick. Each resolved turn, every pool applies its
// effect once to each actor sharing its tile, then loses one turn of
// duration; at zero the pool entity is destroyed and its dissipation logged.
//
// The per-pool occupant scan is linear over actors, which is fine at the
// scale of one dungeon level.
type GroundPools struct{}

func (GroundPools) Update(w *ecs.World) {
	if !TurnResolved(w) {
		return
	}
	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)

	var expired []ecs.EntityID

	for _, poolID := range w.Query(effect.CGroundPool, component.CPosition) {
		pool := w.MustGet(poolID, effect.CGroundPool).(effect.GroundPool)
		poolPos := w.MustGet(poolID, component.CPosition).(component.Position)

		for _, id := range w.Query(component.CIsActor, component.CPosition, component.CHealth) {
			pos := w.MustGet(id, component.CPosition).(component.Position)
			if pos.X != poolPos.X || pos.Y != poolPos.Y {
				continue
			}
			if w.Has(id, component.CIsPlayer) {
				log.Add(fmt.Sprintf("You stand in a pool of %s.", pool.Name), tcell.ColorLightBlue)
			}
			applyPool(w, log, id, pool)
		}

		pool.Duration--
		if pool.Duration <= 0 {
			expired = append(expired, poolID)
		} else {
			w.Add(poolID, pool)
		}
	}

	for _, poolID := range expired {
		pool := w.MustGet(poolID, effect.CGroundPool).(effect.GroundPool)
		log.Add(fmt.Sprintf("The pool of %s dissipates.", pool.Name), tcell.ColorGray)
		w.DestroyEntity(poolID)
	}
}

// applyPool applies a pool's effect kind once to an occupant, using the same
// magnitude rules as every other effect path.
func applyPool(w *ecs.World, log *ui.MessageLog, id ecs.EntityID, pool effect.GroundPool) {
	amt, ok := effect.ApplyMagnitude(w, id, pool.Kind, pool.Power)
	if !ok {
		return
	}
	switch pool.Kind {
	case effect.Heal:
		if amt > 0 {
			narrate(w, log, id,
				fmt.Sprintf("heal %d HP", amt),
				fmt.Sprintf("heals %d HP", amt))
		}
	case effect.Regen:
		if amt > 0 {
			narrate(w, log, id,
				fmt.Sprintf("regenerate %d HP", amt),
				fmt.Sprintf("regenerates %d HP", amt))
		}
	case effect.Damage:
		narrate(w, log, id,
			fmt.Sprintf("take %d damage", amt),
			fmt.Sprintf("takes %d damage", amt))
	case effect.Poison:
		narrate(w, log, id,
			fmt.Sprintf("take %d poison damage", amt),
			fmt.Sprintf("takes %d poison damage", amt))
	case effect.RestoreMana:
		if amt > 0 {
			narrate(w, log, id,
				fmt.Sprintf("restore %d MP", amt),
				fmt.Sprintf("restores %d MP", amt))
		}
	case effect.DrainMana:
		if amt > 0 {
			narrate(w, log, id,
				fmt.Sprintf("lose %d MP", amt),
				fmt.Sprintf("loses %d MP", amt))
		}
	}
}
