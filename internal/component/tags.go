package component

import "glaive/internal/ecs"

const (
	CIsPlayer ecs.ComponentType = 9
	CIsActor  ecs.ComponentType = 10
	CBlocking ecs.ComponentType = 11
	CIsItem   ecs.ComponentType = 12
	CIsStairs ecs.ComponentType = 13
)

// IsPlayer marks the player-controlled entity.
type IsPlayer struct{}

func (IsPlayer) Type() ecs.ComponentType { return CIsPlayer }

// IsActor marks an entity that acts and can stand in ground pools.
type IsActor struct{}

func (IsActor) Type() ecs.ComponentType { return CIsActor }

// Blocking marks an entity that occupies its tile.
type Blocking struct{}

func (Blocking) Type() ecs.ComponentType { return CBlocking }

// IsItem marks a pickup item lying on the map.
type IsItem struct{}

func (IsItem) Type() ecs.ComponentType { return CIsItem }

// IsStairs marks a staircase entity.
type IsStairs struct{}

func (IsStairs) Type() ecs.ComponentType { return CIsStairs }
