// Package system holds the per-frame pipeline: the phase scheduler and the
// gameplay systems it drives.
package system

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
)

// Phase names one stage of the fixed per-frame pipeline.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseAI
	PhaseAction
	PhaseResolution
	PhaseCleanup
	PhaseRender

	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseAI:
		return "ai"
	case PhaseAction:
		return "action"
	case PhaseResolution:
		return "resolution"
	case PhaseCleanup:
		return "cleanup"
	case PhaseRender:
		return "render"
	}
	return "unknown"
}

// System is one unit of gameplay logic with a single entry point.
type System interface {
	Update(w *ecs.World)
}

// Func adapts a plain function to the System interface.
type Func func(w *ecs.World)

func (f Func) Update(w *ecs.World) { f(w) }

// Scheduler runs systems through the six fixed phases in order:
// input → ai → action → resolution → cleanup → render. Within a phase,
// systems run in registration order; there is no dependency graph and no
// reordering. Execution is strictly sequential, so a later system always
// observes every mutation an earlier one made this frame.
type Scheduler struct {
	phases [numPhases][]System
}

// NewScheduler creates an empty scheduler with all six phases present.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a system into exactly one phase, after everything already
// registered there.
func (s *Scheduler) Add(p Phase, sys System) {
	s.phases[p] = append(s.phases[p], sys)
}

// Update runs one full frame: every phase in order, every system within a
// phase in registration order.
func (s *Scheduler) Update(w *ecs.World) {
	for p := Phase(0); p < numPhases; p++ {
		for _, sys := range s.phases[p] {
			sys.Update(w)
		}
	}
}

// TurnResolved reports whether any entity carries the TurnConsumed marker,
// i.e. a discrete game turn elapsed this frame. Resolution systems gate on
// this so they track simulation cadence, not render cadence.
func TurnResolved(w *ecs.World) bool {
	return len(w.Query(component.CTurnConsumed)) > 0
}

// ClearTurnMarkers removes every TurnConsumed marker. The driver calls this
// after each Update so the marker never survives two scheduler passes.
func ClearTurnMarkers(w *ecs.World) {
	for _, id := range w.Query(component.CTurnConsumed) {
		w.Remove(id, component.CTurnConsumed)
	}
}
