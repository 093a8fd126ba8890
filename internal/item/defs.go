package item

import (
	"github.com/gdamore/tcell/v2"

	"glaive/internal/component"
	"glaive/internal/effect"
)

// Def is a template an item entity is stamped from.
type Def struct {
	Name       string
	Glyph      rune
	Color      tcell.Color
	Consumable Consumable
}

// Defs holds the built-in item templates keyed by identifier.
var Defs = map[string]Def{
	"health_potion": {
		Name:  "health potion",
		Glyph: '!',
		Color: tcell.ColorRed,
		Consumable: Consumable{
			Kind:        effect.Heal,
			Power:       20,
			CreatesPool: true,
			Uses:        1,
		},
	},
	"mana_potion": {
		Name:  "mana potion",
		Glyph: '!',
		Color: tcell.ColorBlue,
		Consumable: Consumable{
			Kind:        effect.RestoreMana,
			Power:       15,
			CreatesPool: true,
			Uses:        1,
		},
	},
	"potion_of_strength": {
		Name:  "potion of strength",
		Glyph: '!',
		Color: tcell.ColorOrange,
		Consumable: Consumable{
			Kind:     effect.StatBuff,
			Duration: 10,
			StatModifiers: map[component.Stat]int{
				component.StatStrength: 3,
			},
			CreatesPool: true,
			Uses:        1,
		},
	},
	"potion_of_regeneration": {
		Name:  "potion of regeneration",
		Glyph: '!',
		Color: tcell.ColorPink,
		Consumable: Consumable{
			Kind:        effect.Regen,
			Power:       3,
			Duration:    8,
			CreatesPool: true,
			Uses:        1,
		},
	},
	"poison_flask": {
		Name:  "poison flask",
		Glyph: '!',
		Color: tcell.ColorGreen,
		Consumable: Consumable{
			Kind:        effect.Poison,
			Power:       4,
			Duration:    6,
			CreatesPool: true,
			Uses:        1,
		},
	},
	"scroll_of_fireball": {
		Name:  "scroll of fireball",
		Glyph: '?',
		Color: tcell.ColorYellow,
		Consumable: Consumable{
			Kind:   effect.Damage,
			Power:  12,
			Radius: 2,
			Uses:   1,
		},
	},
	"scroll_of_mass_healing": {
		Name:  "scroll of mass healing",
		Glyph: '?',
		Color: tcell.ColorWhite,
		Consumable: Consumable{
			Kind:   effect.Heal,
			Power:  10,
			Radius: 3,
			Uses:   1,
		},
	},
}
