package component

import (
	"glaive/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CDrawable ecs.ComponentType = 2

// Drawable describes how an entity appears on screen and in messages.
// Order sorts entities sharing a tile: higher draws on top.
type Drawable struct {
	Glyph rune
	Color tcell.Color
	Name  string
	Order int
}

func (Drawable) Type() ecs.ComponentType { return CDrawable }

// Draw order bands. Entities within a band are ordered by insertion.
const (
	OrderPool   = 1
	OrderItem   = 2
	OrderStairs = 3
	OrderActor  = 5
	OrderPlayer = 10
)
