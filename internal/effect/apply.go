package effect

import (
	"fmt"
	"sort"
	"strings"

	"glaive/internal/component"
	"glaive/internal/ecs"
)

// Apply applies an effect to a target entity and returns a message describing
// what happened. Instant effects (duration 0) mutate the target immediately;
// duration effects are appended to the target's ActiveEffects list, creating
// the component when absent. Reapplication never refreshes or merges: every
// application stacks independently.
func Apply(w *ecs.World, target ecs.EntityID, eff Effect) string {
	if eff.Duration == 0 {
		return applyInstant(w, target, eff)
	}

	active := ActiveEffects{}
	if c := w.Get(target, CActiveEffects); c != nil {
		active = c.(ActiveEffects)
	}
	active.Effects = append(active.Effects, eff)
	w.Add(target, active)
	return fmt.Sprintf("%s applied for %d turns", eff.Name, eff.Duration)
}

func applyInstant(w *ecs.World, target ecs.EntityID, eff Effect) string {
	switch eff.Kind {
	case Heal, Regen:
		healed, ok := ApplyMagnitude(w, target, eff.Kind, eff.Power)
		if !ok {
			return "no effect (target has no health)"
		}
		if healed <= 0 {
			return "no effect (already at full health)"
		}
		if eff.Kind == Regen {
			return fmt.Sprintf("regenerated %d HP", healed)
		}
		return fmt.Sprintf("restored %d HP", healed)

	case Damage:
		dealt, ok := ApplyMagnitude(w, target, eff.Kind, eff.Power)
		if !ok {
			return "no effect (target has no health)"
		}
		return fmt.Sprintf("dealt %d damage", dealt)

	case Poison:
		dealt, ok := ApplyMagnitude(w, target, eff.Kind, eff.Power)
		if !ok {
			return "no effect (target has no health)"
		}
		return fmt.Sprintf("dealt %d poison damage", dealt)

	case RestoreMana:
		restored, ok := ApplyMagnitude(w, target, eff.Kind, eff.Power)
		if !ok {
			return "no effect (target has no mana)"
		}
		if restored <= 0 {
			return "no effect (already at full mana)"
		}
		return fmt.Sprintf("restored %d MP", restored)

	case DrainMana:
		drained, ok := ApplyMagnitude(w, target, eff.Kind, eff.Power)
		if !ok {
			return "no effect (target has no mana)"
		}
		return fmt.Sprintf("drained %d MP", drained)

	case StatBuff, StatDebuff:
		// Stat modifiers only take hold as duration effects. The instant
		// path reports what would change and deliberately persists nothing.
		if len(eff.StatModifiers) == 0 {
			return "no effect (no stat modifiers)"
		}
		return "modified stats: " + formatModifiers(eff.StatModifiers)
	}
	return "no effect"
}

// ApplyMagnitude performs one application of kind at the given power against
// the target's attribute tracks. It returns the actual amount changed and
// whether the target had the relevant track at all. This is the single
// magnitude path shared by instant application, the effect tick system, and
// the ground pool system:
//
//	Heal/Regen    add power, clamped to the effective max
//	Damage/Poison subtract power with no floor; hp may go negative
//	RestoreMana   add power, clamped to the effective max
//	DrainMana     subtract power, floored at zero
//
// Stat kinds mutate nothing and report no track.
func ApplyMagnitude(w *ecs.World, target ecs.EntityID, kind Kind, power int) (int, bool) {
	switch kind {
	case Heal, Regen:
		c := w.Get(target, component.CHealth)
		if c == nil {
			return 0, false
		}
		hp := c.(component.Health)
		maxHP := MaxHPFor(w, target, hp)
		old := hp.Current
		hp.Current = min(hp.Current+power, maxHP)
		w.Add(target, hp)
		return hp.Current - old, true

	case Damage, Poison:
		c := w.Get(target, component.CHealth)
		if c == nil {
			return 0, false
		}
		hp := c.(component.Health)
		hp.Current -= power
		w.Add(target, hp)
		return power, true

	case RestoreMana:
		c := w.Get(target, component.CMana)
		if c == nil {
			return 0, false
		}
		mp := c.(component.Mana)
		maxMP := MaxMPFor(w, target, mp)
		old := mp.Current
		mp.Current = min(mp.Current+power, maxMP)
		w.Add(target, mp)
		return mp.Current - old, true

	case DrainMana:
		c := w.Get(target, component.CMana)
		if c == nil {
			return 0, false
		}
		mp := c.(component.Mana)
		old := mp.Current
		mp.Current = max(mp.Current-power, 0)
		w.Add(target, mp)
		return old - mp.Current, true
	}
	return 0, false
}

// MaxHPFor computes the target's effective hit point cap, falling back to the
// bare base when the entity has no stats.
func MaxHPFor(w *ecs.World, target ecs.EntityID, hp component.Health) int {
	c := w.Get(target, component.CStats)
	if c == nil {
		return hp.BaseMax
	}
	return hp.MaxHP(c.(component.Stats), levelOf(w, target))
}

// MaxMPFor computes the target's effective mana cap, falling back to the bare
// base when the entity has no stats.
func MaxMPFor(w *ecs.World, target ecs.EntityID, mp component.Mana) int {
	c := w.Get(target, component.CStats)
	if c == nil {
		return mp.BaseMax
	}
	return mp.MaxMP(c.(component.Stats), levelOf(w, target))
}

// EffectiveStats returns the entity's base stats with all active duration
// stat modifiers applied. Entities without a Stats component get the zero
// value back.
func EffectiveStats(w *ecs.World, id ecs.EntityID) component.Stats {
	var st component.Stats
	if c := w.Get(id, component.CStats); c != nil {
		st = c.(component.Stats)
	}
	if c := w.Get(id, CActiveEffects); c != nil {
		for stat, mod := range c.(ActiveEffects).StatModifiers() {
			st.Set(stat, st.Get(stat)+mod)
		}
	}
	return st
}

func levelOf(w *ecs.World, id ecs.EntityID) int {
	if c := w.Get(id, component.CExperience); c != nil {
		return c.(component.Experience).Level
	}
	return 1
}

func formatModifiers(mods map[component.Stat]int) string {
	stats := make([]component.Stat, 0, len(mods))
	for s := range mods {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i] < stats[j] })

	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s %+d", s, mods[s]))
	}
	return strings.Join(parts, ", ")
}
