package system

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/gamemap"
)

// Movement resolves MoveIntent components against the map and other blocking
// entities. A successful move that consumes a turn adds the TurnConsumed
// marker; the intent is removed either way, so a blocked bump costs nothing.
// Runs in the action phase.
type Movement struct{}

func (Movement) Update(w *ecs.World) {
	m := w.MustResource(gamemap.RMap).(*gamemap.GameMap)

	for _, id := range w.Query(component.CMoveIntent, component.CPosition) {
		intent := w.MustGet(id, component.CMoveIntent).(component.MoveIntent)
		pos := w.MustGet(id, component.CPosition).(component.Position)

		nx, ny := pos.X+intent.DX, pos.Y+intent.DY
		if !m.BlocksMovement(nx, ny) && !entityBlocks(w, id, nx, ny) {
			w.Add(id, component.Position{X: nx, Y: ny})
			if intent.ConsumesTurn {
				w.Add(id, component.TurnConsumed{})
			}
		}

		w.Remove(id, component.CMoveIntent)
	}
}

// entityBlocks reports whether a blocking entity other than mover occupies
// (x, y).
func entityBlocks(w *ecs.World, mover ecs.EntityID, x, y int) bool {
	for _, other := range w.Query(component.CBlocking, component.CPosition) {
		if other == mover {
			continue
		}
		pos := w.MustGet(other, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return true
		}
	}
	return false
}
