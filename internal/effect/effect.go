// Package effect implements instant and duration-based numeric effects,
// their stacking and expiration, and ground pools built on top of them.
package effect

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
)

// Component type keys owned by this package (registry range 16–19).
const (
	CActiveEffects ecs.ComponentType = 16
	CGroundPool    ecs.ComponentType = 17
)

// Kind describes what an effect does to its target.
type Kind uint8

const (
	Heal Kind = iota
	Damage
	Poison
	Regen
	RestoreMana
	DrainMana
	StatBuff
	StatDebuff
)

func (k Kind) String() string {
	switch k {
	case Heal:
		return "heal"
	case Damage:
		return "damage"
	case Poison:
		return "poison"
	case Regen:
		return "regen"
	case RestoreMana:
		return "restore mana"
	case DrainMana:
		return "drain mana"
	case StatBuff:
		return "stat buff"
	case StatDebuff:
		return "stat debuff"
	}
	return "unknown"
}

// Effect is a single effect instance. Duration 0 applies instantly; a
// positive duration ticks once per resolved turn, Power each tick. Radius 0
// targets a single entity; a positive radius splashes a Chebyshev disc.
// Source is a weak reference for attribution only; it never keeps the
// source entity alive.
type Effect struct {
	Name          string
	Kind          Kind
	Power         int
	StatModifiers map[component.Stat]int
	Duration      int
	Radius        int
	Source        ecs.EntityID
}

// ActiveEffects is the ordered list of duration effects on an entity.
// Effects of the same kind never merge: each stacks and ticks independently.
type ActiveEffects struct {
	Effects []Effect
}

func (ActiveEffects) Type() ecs.ComponentType { return CActiveEffects }

// TickDurations decrements every effect's duration by one and partitions the
// list, returning the survivors and the expired.
func TickDurations(effects []Effect) (remaining, expired []Effect) {
	for _, e := range effects {
		e.Duration--
		if e.Duration <= 0 {
			expired = append(expired, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	return remaining, expired
}

// StatModifiers sums the stat modifiers of every active effect.
func (a ActiveEffects) StatModifiers() map[component.Stat]int {
	totals := make(map[component.Stat]int)
	for _, e := range a.Effects {
		for stat, v := range e.StatModifiers {
			totals[stat] += v
		}
	}
	return totals
}

// HasKind reports whether any active effect is of the given kind.
func (a ActiveEffects) HasKind(k Kind) bool {
	for _, e := range a.Effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// KindOf returns the active effects of one kind, in application order.
func (a ActiveEffects) KindOf(k Kind) []Effect {
	var out []Effect
	for _, e := range a.Effects {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}
