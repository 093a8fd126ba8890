package system

import (
	"fmt"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// EffectTick processes duration-based effects. Runs in the resolution phase
// and only on frames where a turn actually resolved. For every entity with
// ActiveEffects it applies each effect's per-tick magnitude, decrements all
// durations by one, logs expirations, and removes the component once the
// list empties.
type EffectTick struct{}

func (EffectTick) Update(w *ecs.World) {
	if !TurnResolved(w) {
		return
	}
	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)

	for _, id := range w.Query(effect.CActiveEffects) {
		active := w.MustGet(id, effect.CActiveEffects).(effect.ActiveEffects)

		for _, e := range active.Effects {
			applyTick(w, log, id, e)
		}

		remaining, expired := effect.TickDurations(active.Effects)
		for _, e := range expired {
			if w.Has(id, component.CIsPlayer) {
				log.Add(fmt.Sprintf("%s wears off.", e.Name), tcell.ColorGray)
			}
		}

		if len(remaining) == 0 {
			w.Remove(id, effect.CActiveEffects)
		} else {
			active.Effects = remaining
			w.Add(id, active)
		}
	}
}

// applyTick applies one effect's per-turn magnitude. Only the damaging and
// regenerating kinds act per tick; stat kinds are passive while active, and
// the instant-only kinds have nothing to do here.
func applyTick(w *ecs.World, log *ui.MessageLog, id ecs.EntityID, e effect.Effect) {
	switch e.Kind {
	case effect.Poison:
		if amt, ok := effect.ApplyMagnitude(w, id, e.Kind, e.Power); ok {
			narrate(w, log, id,
				fmt.Sprintf("take %d poison damage", amt),
				fmt.Sprintf("takes %d poison damage", amt))
		}
	case effect.Damage:
		if amt, ok := effect.ApplyMagnitude(w, id, e.Kind, e.Power); ok {
			narrate(w, log, id,
				fmt.Sprintf("take %d damage", amt),
				fmt.Sprintf("takes %d damage", amt))
		}
	case effect.Regen:
		if amt, ok := effect.ApplyMagnitude(w, id, e.Kind, e.Power); ok && amt > 0 {
			narrate(w, log, id,
				fmt.Sprintf("regenerate %d HP", amt),
				fmt.Sprintf("regenerates %d HP", amt))
		}
	}
}
