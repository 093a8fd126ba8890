package effect

import (
	"glaive/internal/component"
	"glaive/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// DefaultPoolDuration is how many turns a pool lasts unless told otherwise.
const DefaultPoolDuration = 5

// GroundPool is a tile-bound hazard or benefit: an effect payload plus a
// remaining duration. At most one pool exists per tile; creation evicts any
// prior occupant.
type GroundPool struct {
	Kind     Kind
	Power    int
	Duration int
	Name     string
	Source   ecs.EntityID
}

func (GroundPool) Type() ecs.ComponentType { return CGroundPool }

// PoolName is the flavor name used in pool narration.
func PoolName(k Kind) string {
	switch k {
	case Heal:
		return "healing liquid"
	case Damage:
		return "harmful liquid"
	case Poison:
		return "poisonous liquid"
	case Regen:
		return "regenerative liquid"
	case RestoreMana:
		return "mana-restoring liquid"
	case DrainMana:
		return "mana-draining liquid"
	case StatBuff:
		return "empowering liquid"
	case StatDebuff:
		return "weakening liquid"
	}
	return "strange liquid"
}

// PoolColor is the display color for a pool of the given kind.
func PoolColor(k Kind) tcell.Color {
	switch k {
	case Heal:
		return tcell.ColorLightGreen
	case Damage:
		return tcell.ColorRed
	case Poison:
		return tcell.ColorPurple
	case Regen:
		return tcell.ColorGreen
	case RestoreMana:
		return tcell.ColorLightBlue
	case DrainMana:
		return tcell.ColorDarkBlue
	case StatBuff:
		return tcell.ColorYellow
	case StatDebuff:
		return tcell.ColorOrange
	}
	return tcell.ColorWhite
}

// PoolAt returns the pool entity at the given tile, if one exists.
func PoolAt(w *ecs.World, x, y int) (ecs.EntityID, bool) {
	for _, id := range w.Query(CGroundPool, component.CPosition) {
		pos := w.MustGet(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return ecs.NilEntity, false
}

// RemovePoolAt destroys any pool at the given tile, reporting whether one
// was there.
func RemovePoolAt(w *ecs.World, x, y int) bool {
	if id, ok := PoolAt(w, x, y); ok {
		w.DestroyEntity(id)
		return true
	}
	return false
}

// CreatePool creates a ground pool at (x, y), evicting any pool already on
// the tile first. source attributes the pool to its creator and may be
// NilEntity. A duration <= 0 falls back to DefaultPoolDuration.
func CreatePool(w *ecs.World, x, y int, kind Kind, power int, source ecs.EntityID, duration int) ecs.EntityID {
	RemovePoolAt(w, x, y)

	if duration <= 0 {
		duration = DefaultPoolDuration
	}
	name := PoolName(kind)

	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Drawable{
		Glyph: '~',
		Color: PoolColor(kind),
		Name:  "pool of " + name,
		Order: component.OrderPool,
	})
	w.Add(id, GroundPool{
		Kind:     kind,
		Power:    power,
		Duration: duration,
		Name:     name,
		Source:   source,
	})
	return id
}
