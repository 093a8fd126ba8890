package system

import (
	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// narrate logs one line about something happening to an entity. The player
// gets the second-person form; named non-player entities get the
// third-person form in a muted color. Anonymous entities stay silent.
func narrate(w *ecs.World, log *ui.MessageLog, id ecs.EntityID, second, third string) {
	if w.Has(id, component.CIsPlayer) {
		log.Add("You "+second+".", tcell.ColorLightBlue)
		return
	}
	if c := w.Get(id, component.CDrawable); c != nil {
		name := c.(component.Drawable).Name
		log.Add(name+" "+third+".", tcell.ColorLightGray)
	}
}
