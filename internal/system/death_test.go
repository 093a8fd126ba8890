package system

import (
	"strings"
	"testing"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/ui"
)

func newDeathWorld() (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	w.AddResource(ui.NewMessageLog(20))

	player := w.CreateEntity()
	w.Add(player, component.Health{Current: 45, BaseMax: 20})
	w.Add(player, component.Experience{Level: 1})
	w.Add(player, component.IsPlayer{})
	w.Add(player, component.IsActor{})
	return w, player
}

func addMonster(w *ecs.World, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Health{Current: hp, BaseMax: hp})
	w.Add(id, component.Drawable{Name: "goblin"})
	w.Add(id, component.IsActor{})
	return id
}

func logContains(w *ecs.World, sub string) bool {
	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)
	for _, m := range log.Visible(log.Len()) {
		if strings.Contains(m.Text, sub) {
			return true
		}
	}
	return false
}

func TestDeathDestroysDeadMonster(t *testing.T) {
	w, _ := newDeathWorld()
	dead := addMonster(w, -3)
	alive := addMonster(w, 5)

	Death{}.Update(w)

	if w.Alive(dead) {
		t.Error("monster at negative hp survived cleanup")
	}
	if !w.Alive(alive) {
		t.Error("healthy monster was destroyed")
	}
	if !logContains(w, "goblin dies") {
		t.Error("death was not logged")
	}
}

func TestDeathAwardsExperience(t *testing.T) {
	w, player := newDeathWorld()
	addMonster(w, 0)

	Death{}.Update(w)

	xp := w.MustGet(player, component.CExperience).(component.Experience)
	if xp.CurrentXP != killXP {
		t.Errorf("player xp = %d, want %d", xp.CurrentXP, killXP)
	}
}

func TestDeathLevelsUpPlayer(t *testing.T) {
	w, player := newDeathWorld()
	w.Add(player, component.Experience{Level: 1, CurrentXP: 90})
	w.Add(player, component.Health{Current: 10, BaseMax: 20})
	addMonster(w, 0)

	Death{}.Update(w)

	xp := w.MustGet(player, component.CExperience).(component.Experience)
	if xp.Level != 2 {
		t.Fatalf("player level = %d, want 2", xp.Level)
	}
	if xp.CurrentXP != 15 {
		t.Errorf("carried-over xp = %d, want 15", xp.CurrentXP)
	}
	// No Stats component on this player, so the refill caps at BaseMax.
	hp := w.MustGet(player, component.CHealth).(component.Health)
	if hp.Current != hp.BaseMax {
		t.Errorf("hp after level-up = %d, want %d", hp.Current, hp.BaseMax)
	}
}

func TestDeathIgnoresPlayer(t *testing.T) {
	w, player := newDeathWorld()
	w.Add(player, component.Health{Current: -5, BaseMax: 20})

	Death{}.Update(w)

	if !w.Alive(player) {
		t.Error("cleanup destroyed the player; that call belongs to the driver")
	}
}
