package component

import "glaive/internal/ecs"

const (
	CMoveIntent   ecs.ComponentType = 7
	CTurnConsumed ecs.ComponentType = 8
)

// MoveIntent asks the movement system to shift the entity by (DX, DY) this
// frame. A (0, 0) intent is a deliberate wait. The movement system always
// removes the intent, whether or not the move succeeds.
type MoveIntent struct {
	DX, DY       int
	ConsumesTurn bool
}

func (MoveIntent) Type() ecs.ComponentType { return CMoveIntent }

// TurnConsumed marks that a discrete game turn elapsed this frame. Action
// systems add it, resolution systems observe it, and the driver clears every
// marker after the scheduler pass; it never survives into the next frame.
type TurnConsumed struct{}

func (TurnConsumed) Type() ecs.ComponentType { return CTurnConsumed }
