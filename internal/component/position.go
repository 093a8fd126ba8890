package component

import "glaive/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's tile coordinate on the current map.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
