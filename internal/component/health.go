package component

import "glaive/internal/ecs"

const CHealth ecs.ComponentType = 3

// Health is an entity's hit point track. Current is never floored at zero:
// damage paths leave it to the driver to decide when an entity dies.
type Health struct {
	Current, BaseMax int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// MaxHP is the effective hit point cap for an entity with stats:
// base + constitution*2 + level*5.
func (h Health) MaxHP(st Stats, level int) int {
	return h.BaseMax + st.Constitution*2 + level*5
}
