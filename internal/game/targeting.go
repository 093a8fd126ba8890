package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/geometry"
	"glaive/internal/item"
)

// runTargeting lets the player aim a throw of itemID. A trajectory preview
// follows the cursor; Enter throws when the target is in range and in sight.
// Returns true if the item was thrown (a turn was spent).
func (g *Game) runTargeting(itemID ecs.EntityID) bool {
	pos := g.playerPosition()
	cx, cy := pos.X, pos.Y
	maxRange := item.ThrowRange(g.world, g.playerID)

	for {
		valid := g.targetValid(pos.X, pos.Y, cx, cy, maxRange)
		g.drawTargeting(pos.X, pos.Y, cx, cy, maxRange, valid)

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			if ev.Key() == tcell.KeyEnter {
				if !valid {
					continue
				}
				return g.throwAt(itemID, cx, cy)
			}
			action := keyToAction(ev)
			if action == ActionQuit {
				return false
			}
			if ev.Rune() == 't' || ev.Rune() == 'T' {
				if valid {
					return g.throwAt(itemID, cx, cy)
				}
				continue
			}
			dx, dy := actionToDelta(action)
			nx, ny := cx+dx, cy+dy
			if g.gmap.InBounds(nx, ny) {
				cx, cy = nx, ny
			}
		}
	}
}

// targetValid reports whether a throw from (px, py) to (cx, cy) is allowed:
// within range, on an explored-and-lit tile, with a clear line of sight.
func (g *Game) targetValid(px, py, cx, cy, maxRange int) bool {
	return geometry.InRange(px, py, cx, cy, maxRange) &&
		g.gmap.IsVisible(cx, cy) &&
		geometry.HasLineOfSight(px, py, cx, cy, g.gmap)
}

// throwAt performs the throw and logs the impact narration.
func (g *Game) throwAt(itemID ecs.EntityID, cx, cy int) bool {
	name := g.entityName(itemID)
	msgs, ok := item.Throw(g.world, g.playerID, itemID, cx, cy, g.gmap)
	if !ok {
		for _, m := range msgs {
			g.log.AddWarning(m)
		}
		return false
	}
	g.runLog.ItemsUsed[name]++
	for _, m := range msgs {
		g.log.AddCombat(m)
	}
	g.world.Add(g.playerID, component.TurnConsumed{})
	return true
}

// drawTargeting renders the normal frame with the trajectory overlaid.
func (g *Game) drawTargeting(px, py, cx, cy, maxRange int, valid bool) {
	g.renderer.DrawFrame(g.world, g.gmap, g.log)

	for _, p := range geometry.Line(px, py, cx, cy) {
		if p.X == px && p.Y == py {
			continue
		}
		if p.X == cx && p.Y == cy {
			break
		}
		g.renderer.DrawGlyph(p.X, p.Y, '*', tcell.ColorYellow)
	}

	cursorColor := tcell.ColorGreen
	if !valid {
		cursorColor = tcell.ColorRed
	}
	g.renderer.DrawGlyph(cx, cy, 'X', cursorColor)

	hint := fmt.Sprintf("Throw where? range %d  [direction keys] aim  [Enter/t] throw  [Esc] cancel", maxRange)
	g.putText(0, 0, hint, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	g.renderer.Show()
}
