package item

import (
	"strings"
	"testing"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/generate"
)

func newActor(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: 30, BaseMax: 20})
	w.Add(id, component.Mana{Current: 10, BaseMax: 10})
	w.Add(id, component.Stats{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10})
	w.Add(id, component.Experience{Level: 1})
	w.Add(id, component.IsActor{})
	return id
}

func newItem(w *ecs.World, key string) ecs.EntityID {
	def, ok := Defs[key]
	if !ok {
		panic("unknown item def " + key)
	}
	id := w.CreateEntity()
	w.Add(id, def.Consumable)
	w.Add(id, component.Drawable{Glyph: def.Glyph, Color: def.Color, Name: def.Name})
	return id
}

func TestConsumeHealthPotion(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)
	potion := newItem(w, "health_potion")

	msg, ok := Consume(w, actor, potion)
	if !ok {
		t.Fatalf("Consume failed: %q", msg)
	}
	hp := w.MustGet(actor, component.CHealth).(component.Health)
	if hp.Current != 45 {
		t.Errorf("hp after potion = %d, want 45", hp.Current)
	}
	if !strings.Contains(msg, "health potion") {
		t.Errorf("message %q does not name the item", msg)
	}
	if w.Alive(potion) {
		t.Error("single-use potion still alive after drinking")
	}
}

func TestConsumeSpendsOneUse(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)
	id := w.CreateEntity()
	w.Add(id, Consumable{Kind: effect.RestoreMana, Power: 2, Uses: 3})

	if _, ok := Consume(w, actor, id); !ok {
		t.Fatal("Consume failed")
	}
	if !w.Alive(id) {
		t.Fatal("multi-use item destroyed with uses remaining")
	}
	c := w.MustGet(id, CConsumable).(Consumable)
	if c.Uses != 2 {
		t.Errorf("uses after one drink = %d, want 2", c.Uses)
	}
}

func TestConsumeNonConsumable(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)
	rock := w.CreateEntity()

	if _, ok := Consume(w, actor, rock); ok {
		t.Error("consumed an entity with no Consumable component")
	}
}

func TestConsumeDurationPotionStacks(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)

	Consume(w, actor, newItem(w, "potion_of_strength"))
	Consume(w, actor, newItem(w, "potion_of_strength"))

	st := effect.EffectiveStats(w, actor)
	if st.Strength != 16 {
		t.Errorf("strength after two potions = %d, want 16", st.Strength)
	}
}

func TestThrowRange(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)
	if got := ThrowRange(w, actor); got != 5 {
		t.Errorf("range at strength 10 = %d, want 5", got)
	}

	w.Add(actor, component.Stats{Strength: 14, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10})
	if got := ThrowRange(w, actor); got != 7 {
		t.Errorf("range at strength 14 = %d, want 7", got)
	}

	w.Add(actor, component.Stats{Strength: 1, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10})
	if got := ThrowRange(w, actor); got != 2 {
		t.Errorf("range at strength 1 = %d, want minimum 2", got)
	}
}

func TestThrowRangeUsesEffectiveStrength(t *testing.T) {
	w := ecs.NewWorld()
	actor := newActor(w, 1, 1)
	effect.Apply(w, actor, effect.Effect{
		Name: "might", Kind: effect.StatBuff, Duration: 5,
		StatModifiers: map[component.Stat]int{component.StatStrength: 4},
	})
	if got := ThrowRange(w, actor); got != 7 {
		t.Errorf("range under strength buff = %d, want 7", got)
	}
}

func TestThrowDirectHit(t *testing.T) {
	w := ecs.NewWorld()
	m, _, _ := generate.Arena(20, 20)
	thrower := newActor(w, 2, 2)
	victim := newActor(w, 5, 2)
	w.Add(victim, component.Drawable{Name: "goblin"})
	flask := newItem(w, "poison_flask")

	msgs, ok := Throw(w, thrower, flask, 5, 2, m)
	if !ok {
		t.Fatal("Throw failed")
	}
	if !w.Has(victim, effect.CActiveEffects) {
		t.Error("victim has no active effects after a direct poison hit")
	}
	if w.Alive(flask) {
		t.Error("flask still alive after being thrown")
	}
	if len(msgs) == 0 || !strings.Contains(msgs[0], "goblin") {
		t.Errorf("messages %v do not name the victim", msgs)
	}
}

func TestThrowLiquidMissLeavesPool(t *testing.T) {
	w := ecs.NewWorld()
	m, _, _ := generate.Arena(20, 20)
	thrower := newActor(w, 2, 2)
	potion := newItem(w, "health_potion")

	if _, ok := Throw(w, thrower, potion, 6, 6, m); !ok {
		t.Fatal("Throw failed")
	}
	id, found := effect.PoolAt(w, 6, 6)
	if !found {
		t.Fatal("no pool on the impact tile")
	}
	pool := w.MustGet(id, effect.CGroundPool).(effect.GroundPool)
	if pool.Kind != effect.Heal {
		t.Errorf("pool kind = %v, want Heal", pool.Kind)
	}
}

func TestThrowScrollMissLandsDry(t *testing.T) {
	w := ecs.NewWorld()
	m, _, _ := generate.Arena(20, 20)
	thrower := newActor(w, 2, 2)
	id := w.CreateEntity()
	w.Add(id, Consumable{Kind: effect.Damage, Power: 5, Uses: 1})

	if _, ok := Throw(w, thrower, id, 6, 6, m); !ok {
		t.Fatal("Throw failed")
	}
	if _, found := effect.PoolAt(w, 6, 6); found {
		t.Error("non-liquid item left a pool")
	}
}

func TestThrowRadiusSplashesActors(t *testing.T) {
	w := ecs.NewWorld()
	m, _, _ := generate.Arena(30, 20)
	thrower := newActor(w, 2, 2)
	near := newActor(w, 11, 10)  // inside radius 2 of (10, 10)
	edge := newActor(w, 12, 12)  // chebyshev 2, still inside
	far := newActor(w, 14, 10)   // chebyshev 4, outside
	scroll := newItem(w, "scroll_of_fireball")

	if _, ok := Throw(w, thrower, scroll, 10, 10, m); !ok {
		t.Fatal("Throw failed")
	}
	for _, tc := range []struct {
		id   ecs.EntityID
		hurt bool
	}{{near, true}, {edge, true}, {far, false}} {
		hp := w.MustGet(tc.id, component.CHealth).(component.Health)
		if hurt := hp.Current < 30; hurt != tc.hurt {
			t.Errorf("entity %d hp = %d, hurt = %v, want %v", tc.id, hp.Current, hurt, tc.hurt)
		}
	}
}
