package component

import "glaive/internal/ecs"

const CExperience ecs.ComponentType = 6

// Experience tracks character level and progress toward the next one.
type Experience struct {
	Level     int
	CurrentXP int
}

func (Experience) Type() ecs.ComponentType { return CExperience }

// XPForNextLevel is the threshold for the next level-up.
func (e Experience) XPForNextLevel() int {
	return e.Level * 100
}
