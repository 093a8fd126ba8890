package system

import (
	"testing"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/ui"
)

// newPoolWorld builds a world with a message log and an actor standing at
// (5,5) with hp 20 and an effective cap of 40 (base 15, con 10, level 1).
func newPoolWorld() (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	w.AddResource(ui.NewMessageLog(50))
	id := w.CreateEntity()
	w.Add(id, component.Position{X: 5, Y: 5})
	w.Add(id, component.Health{Current: 20, BaseMax: 15})
	w.Add(id, component.Stats{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10})
	w.Add(id, component.Experience{Level: 1})
	w.Add(id, component.IsActor{})
	return w, id
}

func resolvePoolTurn(w *ecs.World, id ecs.EntityID) {
	w.Add(id, component.TurnConsumed{})
	GroundPools{}.Update(w)
	ClearTurnMarkers(w)
}

func TestHealPoolHealsOccupantAndTicksDown(t *testing.T) {
	w, actor := newPoolWorld()
	poolID := effect.CreatePool(w, 5, 5, effect.Heal, 10, ecs.NilEntity, 5)

	resolvePoolTurn(w, actor)

	hp := w.MustGet(actor, component.CHealth).(component.Health)
	if hp.Current != 30 {
		t.Errorf("hp = %d; want 30 after standing in a heal-10 pool", hp.Current)
	}
	pool := w.MustGet(poolID, effect.CGroundPool).(effect.GroundPool)
	if pool.Duration != 4 {
		t.Errorf("pool duration = %d; want 4 after one resolved turn", pool.Duration)
	}
}

func TestPoolIgnoresActorsElsewhere(t *testing.T) {
	w, actor := newPoolWorld()
	effect.CreatePool(w, 8, 8, effect.Poison, 5, ecs.NilEntity, 5)

	resolvePoolTurn(w, actor)

	hp := w.MustGet(actor, component.CHealth).(component.Health)
	if hp.Current != 20 {
		t.Errorf("hp = %d; pool on another tile must not apply", hp.Current)
	}
}

func TestPoolGatedOnTurn(t *testing.T) {
	w, actor := newPoolWorld()
	poolID := effect.CreatePool(w, 5, 5, effect.Poison, 5, ecs.NilEntity, 5)

	// No resolved turn this frame.
	GroundPools{}.Update(w)

	hp := w.MustGet(actor, component.CHealth).(component.Health)
	if hp.Current != 20 {
		t.Errorf("hp = %d; pool must not apply without a resolved turn", hp.Current)
	}
	pool := w.MustGet(poolID, effect.CGroundPool).(effect.GroundPool)
	if pool.Duration != 5 {
		t.Errorf("duration = %d; must not tick without a resolved turn", pool.Duration)
	}
}

func TestPoolExpiresAndDissipates(t *testing.T) {
	w, actor := newPoolWorld()
	poolID := effect.CreatePool(w, 5, 5, effect.Damage, 2, ecs.NilEntity, 2)

	resolvePoolTurn(w, actor)
	resolvePoolTurn(w, actor)

	if w.Alive(poolID) {
		t.Fatal("pool must be destroyed when its duration reaches zero")
	}
	if _, ok := effect.PoolAt(w, 5, 5); ok {
		t.Fatal("no pool should remain at the tile")
	}

	hp := w.MustGet(actor, component.CHealth).(component.Health)
	if hp.Current != 16 {
		t.Errorf("hp = %d; want 16 after two damage-2 applications", hp.Current)
	}

	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)
	found := false
	for _, m := range log.Visible(log.Len()) {
		if m.Text == "The pool of harmful liquid dissipates." {
			found = true
		}
	}
	if !found {
		t.Error("expected a dissipation message")
	}
}

func TestPoolAppliesOncePerOccupantPerTurn(t *testing.T) {
	w, a := newPoolWorld()
	b := w.CreateEntity()
	w.Add(b, component.Position{X: 5, Y: 5})
	w.Add(b, component.Health{Current: 10, BaseMax: 15})
	w.Add(b, component.IsActor{})
	effect.CreatePool(w, 5, 5, effect.Poison, 3, ecs.NilEntity, 5)

	resolvePoolTurn(w, a)

	hpA := w.MustGet(a, component.CHealth).(component.Health)
	hpB := w.MustGet(b, component.CHealth).(component.Health)
	if hpA.Current != 17 || hpB.Current != 7 {
		t.Errorf("hp = %d/%d; each occupant takes the pool exactly once", hpA.Current, hpB.Current)
	}
}
