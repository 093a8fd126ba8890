// Package factory stamps out fully-assembled game entities.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/item"
)

// NewPlayer creates the player entity at (x, y) with baseline attributes.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	st := component.Stats{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10}
	maxHP := component.Health{BaseMax: 20}.MaxHP(st, 1)
	maxMP := component.Mana{BaseMax: 10}.MaxMP(st, 1)

	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Drawable{Glyph: '@', Color: tcell.ColorWhite, Name: "you", Order: component.OrderPlayer})
	w.Add(id, component.Health{Current: maxHP, BaseMax: 20})
	w.Add(id, component.Mana{Current: maxMP, BaseMax: 10})
	w.Add(id, st)
	w.Add(id, component.Experience{Level: 1})
	w.Add(id, component.IsPlayer{})
	w.Add(id, component.IsActor{})
	w.Add(id, component.Blocking{})
	return id
}

// MonsterDef describes a monster template.
type MonsterDef struct {
	Name  string
	Glyph rune
	Color tcell.Color
	HP    int
	Stats component.Stats
}

// Monsters holds the built-in monster templates keyed by identifier.
var Monsters = map[string]MonsterDef{
	"rat": {
		Name: "giant rat", Glyph: 'r', Color: tcell.ColorSaddleBrown,
		HP:    8,
		Stats: component.Stats{Strength: 6, Dexterity: 12, Constitution: 6, Intelligence: 2, Wisdom: 6},
	},
	"goblin": {
		Name: "goblin", Glyph: 'g', Color: tcell.ColorGreen,
		HP:    12,
		Stats: component.Stats{Strength: 8, Dexterity: 12, Constitution: 8, Intelligence: 8, Wisdom: 8},
	},
	"orc": {
		Name: "orc", Glyph: 'o', Color: tcell.ColorDarkGreen,
		HP:    18,
		Stats: component.Stats{Strength: 14, Dexterity: 8, Constitution: 12, Intelligence: 6, Wisdom: 8},
	},
}

// NewMonster creates a monster from the named template at (x, y). Unknown
// template names return NilEntity.
func NewMonster(w *ecs.World, key string, x, y int) ecs.EntityID {
	def, ok := Monsters[key]
	if !ok {
		return ecs.NilEntity
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Drawable{Glyph: def.Glyph, Color: def.Color, Name: def.Name, Order: component.OrderActor})
	w.Add(id, component.Health{Current: def.HP, BaseMax: def.HP})
	w.Add(id, def.Stats)
	w.Add(id, component.IsActor{})
	w.Add(id, component.Blocking{})
	return id
}

// NewConsumable creates an item from the named item template lying at (x, y).
// Unknown template names return NilEntity.
func NewConsumable(w *ecs.World, key string, x, y int) ecs.EntityID {
	def, ok := item.Defs[key]
	if !ok {
		return ecs.NilEntity
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Drawable{Glyph: def.Glyph, Color: def.Color, Name: def.Name, Order: component.OrderItem})
	w.Add(id, def.Consumable)
	w.Add(id, component.IsItem{})
	w.Add(id, item.OnGround{})
	return id
}

// NewStairs creates a downward staircase at (x, y).
func NewStairs(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Drawable{Glyph: '>', Color: tcell.ColorWhite, Name: "stairs down", Order: component.OrderStairs})
	w.Add(id, component.IsStairs{})
	return id
}
