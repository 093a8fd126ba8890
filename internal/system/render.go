package system

import (
	"glaive/internal/ecs"
	"glaive/internal/gamemap"
	"glaive/internal/render"
	"glaive/internal/ui"
)

// Render is the render-phase system: it reads the world and hands the frame
// to the renderer resource. It runs every frame, regardless of whether a
// turn resolved; presentation cadence is decoupled from simulation cadence.
type Render struct{}

func (Render) Update(w *ecs.World) {
	r := w.MustResource(render.RRenderer).(*render.Renderer)
	m := w.MustResource(gamemap.RMap).(*gamemap.GameMap)
	log := w.MustResource(ui.RMessageLog).(*ui.MessageLog)
	r.DrawFrame(w, m, log)
}
