package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/item"
)

// runInventoryScreen opens a blocking pack UI. Returns true if a turn was
// spent (an item was used or thrown).
func (g *Game) runInventoryScreen() bool {
	cursor := 0
	statusMsg := ""

	for {
		carried := g.carriedItems()
		if cursor >= len(carried) {
			cursor = len(carried) - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		g.drawInventoryScreen(carried, cursor, statusMsg)

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			statusMsg = ""
			switch ev.Key() {
			case tcell.KeyEscape:
				return false
			case tcell.KeyUp:
				cursor--
			case tcell.KeyDown:
				cursor++
			case tcell.KeyEnter:
				if used := g.invUse(carried, cursor); used {
					return true
				}
				statusMsg = "Nothing selected."
			default:
				switch ev.Rune() {
				case 'k', 'K':
					cursor--
				case 'j', 'J':
					cursor++
				case 'u', 'U':
					if used := g.invUse(carried, cursor); used {
						return true
					}
					statusMsg = "Nothing selected."
				case 't', 'T':
					if cursor < len(carried) {
						if thrown := g.runTargeting(carried[cursor]); thrown {
							return true
						}
						statusMsg = "Throw cancelled."
					}
				case 'd', 'D':
					statusMsg = g.invDrop(carried, cursor)
				case 'i', 'I', 'q', 'Q':
					return false
				}
			}
		}
	}
}

// carriedItems returns the player's pack contents in stable ID order.
func (g *Game) carriedItems() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range g.world.Query(item.CInInventory, item.CConsumable) {
		if g.world.MustGet(id, item.CInInventory).(item.InInventory).Owner == g.playerID {
			out = append(out, id)
		}
	}
	return out
}

// invUse drinks or reads the selected item, logging the result.
func (g *Game) invUse(carried []ecs.EntityID, cursor int) bool {
	if cursor < 0 || cursor >= len(carried) {
		return false
	}
	id := carried[cursor]
	name := g.entityName(id)
	msg, ok := item.Consume(g.world, g.playerID, id)
	if !ok {
		return false
	}
	g.runLog.ItemsUsed[name]++
	g.log.AddInfo(msg)
	return true
}

// invDrop puts the selected item back on the floor under the player.
func (g *Game) invDrop(carried []ecs.EntityID, cursor int) string {
	if cursor < 0 || cursor >= len(carried) {
		return "Nothing selected."
	}
	id := carried[cursor]
	pos := g.playerPosition()
	g.world.Remove(id, item.CInInventory)
	g.world.Add(id, component.Position{X: pos.X, Y: pos.Y})
	g.world.Add(id, item.OnGround{})
	return fmt.Sprintf("Dropped the %s.", g.entityName(id))
}

// drawInventoryScreen renders the pack list over a cleared screen.
func (g *Game) drawInventoryScreen(carried []ecs.EntityID, cursor int, statusMsg string) {
	g.screen.Clear()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)

	g.putText(0, 0, fmt.Sprintf("PACK  (%d items)", len(carried)), yellow)
	g.putText(0, 1, "[j/k] Move  [u/Enter] Use  [t] Throw  [d] Drop  [Esc] Close", gray)

	if len(carried) == 0 {
		g.putText(2, 3, "(empty)", gray)
	}
	for i, id := range carried {
		style := white
		pfx := "  "
		if i == cursor {
			style = highlight
			pfx = "> "
		}
		c := g.world.MustGet(id, item.CConsumable).(item.Consumable)
		line := fmt.Sprintf("%s%c %s%s", pfx, g.entityGlyph(id), g.entityName(id), describeConsumable(c))
		g.putText(0, 3+i, line, style)
	}

	if statusMsg != "" {
		g.putText(0, 4+len(carried), statusMsg, green)
	}
	g.screen.Show()
}

func (g *Game) entityGlyph(id ecs.EntityID) rune {
	if c := g.world.Get(id, component.CDrawable); c != nil {
		return c.(component.Drawable).Glyph
	}
	return '?'
}

// describeConsumable returns a compact payload summary, e.g. " (heal 20)" or
// " (poison 4, 6 turns)".
func describeConsumable(c item.Consumable) string {
	s := fmt.Sprintf(" (%s", c.Kind)
	if c.Power != 0 {
		s += fmt.Sprintf(" %d", c.Power)
	}
	if c.Duration > 0 {
		s += fmt.Sprintf(", %d turns", c.Duration)
	}
	if c.Radius > 0 {
		s += fmt.Sprintf(", radius %d", c.Radius)
	}
	return s + ")"
}
