package system

import (
	"fmt"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/ui"
)

// XP awarded to the player for each monster that dies.
const killXP = 25

// Death removes monsters whose hit points ran out and awards the player
// experience for each. Runs in the cleanup phase every frame; the player's
// own death is left to the driver, which owns the game-over state.
type Death struct{}

func (Death) Update(w *ecs.World) {
	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)

	for _, id := range w.Query(component.CHealth, component.CIsActor) {
		if w.Has(id, component.CIsPlayer) {
			continue
		}
		hp := w.MustGet(id, component.CHealth).(component.Health)
		if hp.Current > 0 {
			continue
		}

		name := "something"
		if c := w.Get(id, component.CDrawable); c != nil {
			name = c.(component.Drawable).Name
		}
		log.AddCombat(fmt.Sprintf("The %s dies!", name))
		w.DestroyEntity(id)
		awardKillXP(w, log)
	}
}

// awardKillXP grants the kill reward to every player entity, levelling them
// up as thresholds are crossed. Levelling raises the derived HP and mana
// caps, so the current values are topped up to the new maximums.
func awardKillXP(w *ecs.World, log *ui.MessageLog) {
	for _, id := range w.Query(component.CIsPlayer, component.CExperience) {
		xp := w.MustGet(id, component.CExperience).(component.Experience)
		xp.CurrentXP += killXP

		for xp.CurrentXP >= xp.XPForNextLevel() {
			xp.CurrentXP -= xp.XPForNextLevel()
			xp.Level++
			w.Add(id, xp)
			refillVitals(w, id)
			log.AddSuccess(fmt.Sprintf("You feel stronger! Welcome to level %d.", xp.Level))
		}
		w.Add(id, xp)
	}
}

func refillVitals(w *ecs.World, id ecs.EntityID) {
	if c := w.Get(id, component.CHealth); c != nil {
		hp := c.(component.Health)
		hp.Current = effect.MaxHPFor(w, id, hp)
		w.Add(id, hp)
	}
	if c := w.Get(id, component.CMana); c != nil {
		mp := c.(component.Mana)
		mp.Current = effect.MaxMPFor(w, id, mp)
		w.Add(id, mp)
	}
}
