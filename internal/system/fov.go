package system

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/gamemap"
	"glaive/internal/geometry"
)

// RecomputeVisibility clears all tile visibility and relights the map from
// the viewer's position: a tile is visible when it lies within radius
// (Chebyshev) and an unobstructed line runs to it. Visited tiles stay
// explored forever.
//
// This is the external field-of-view pass; the driver calls it when a turn
// resolves, outside the scheduler, so gameplay systems only ever read the
// visibility flags.
func RecomputeVisibility(w *ecs.World, m *gamemap.GameMap, viewer ecs.EntityID, radius int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.At(x, y).Visible = false
		}
	}

	c := w.Get(viewer, component.CPosition)
	if c == nil {
		return
	}
	pos := c.(component.Position)

	for _, p := range geometry.TilesInRadius(pos.X, pos.Y, radius, m) {
		if !geometry.HasLineOfSight(pos.X, pos.Y, p.X, p.Y, m) {
			continue
		}
		t := m.At(p.X, p.Y)
		t.Visible = true
		t.Explored = true
	}
}
