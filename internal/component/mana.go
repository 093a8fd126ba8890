package component

import "glaive/internal/ecs"

const CMana ecs.ComponentType = 4

// Mana is an entity's spell point track. Unlike health, drains floor at zero.
type Mana struct {
	Current, BaseMax int
}

func (Mana) Type() ecs.ComponentType { return CMana }

// MaxMP is the effective mana cap for an entity with stats:
// base + intelligence*2 + level*5.
func (m Mana) MaxMP(st Stats, level int) int {
	return m.BaseMax + st.Intelligence*2 + level*5
}
