package component

import "glaive/internal/ecs"

const CStats ecs.ComponentType = 5

// Stat names one of the five attribute scores, used as the key of effect
// stat-modifier maps.
type Stat uint8

const (
	StatStrength Stat = iota
	StatDexterity
	StatConstitution
	StatIntelligence
	StatWisdom
)

func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatDexterity:
		return "dexterity"
	case StatConstitution:
		return "constitution"
	case StatIntelligence:
		return "intelligence"
	case StatWisdom:
		return "wisdom"
	}
	return "unknown"
}

// Stats holds an entity's five attribute scores. 10 is the unremarkable
// baseline; bonuses scale off the distance from it.
type Stats struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
}

func (Stats) Type() ecs.ComponentType { return CStats }

// Get returns the named score.
func (st Stats) Get(s Stat) int {
	switch s {
	case StatStrength:
		return st.Strength
	case StatDexterity:
		return st.Dexterity
	case StatConstitution:
		return st.Constitution
	case StatIntelligence:
		return st.Intelligence
	case StatWisdom:
		return st.Wisdom
	}
	return 0
}

// Set overwrites the named score.
func (st *Stats) Set(s Stat, v int) {
	switch s {
	case StatStrength:
		st.Strength = v
	case StatDexterity:
		st.Dexterity = v
	case StatConstitution:
		st.Constitution = v
	case StatIntelligence:
		st.Intelligence = v
	case StatWisdom:
		st.Wisdom = v
	}
}

// Bonus converts an attribute score into its modifier: (score-10)/2.
func Bonus(score int) int {
	return (score - 10) / 2
}
