// Package render draws the world onto a tcell screen through a clamped
// camera. It owns presentation only: gameplay systems write components and
// the message log, and the renderer reads them back once per frame.
package render

import (
	"fmt"
	"sort"

	"glaive/internal/component"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/gamemap"
	"glaive/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RRenderer is the resource slot for the active renderer.
const RRenderer ecs.ResourceType = 3

// Rows reserved under the map viewport: one HUD line plus the log panel.
const (
	hudRows = 1
	logRows = 5
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen and map size.
func NewRenderer(screen tcell.Screen, mapWidth, mapHeight int) *Renderer {
	w, h := screen.Size()
	viewH := h - hudRows - logRows
	if viewH < 1 {
		viewH = 1
	}
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, viewH, mapWidth, mapHeight),
	}
}

func (*Renderer) ResourceType() ecs.ResourceType { return RRenderer }

// Camera exposes the viewport transform for input code that needs
// screen-to-world conversion.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize refits the viewport after the terminal or map size changes.
func (r *Renderer) Resize(mapWidth, mapHeight int) {
	w, h := r.screen.Size()
	viewH := h - hudRows - logRows
	if viewH < 1 {
		viewH = 1
	}
	r.camera.Width = w
	r.camera.Height = viewH
	r.camera.MapWidth = mapWidth
	r.camera.MapHeight = mapHeight
}

// DrawFrame renders the map, entities, HUD, and message log. The caller
// shows the screen afterwards, so overlays can still be painted on top.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap, log *ui.MessageLog) {
	r.screen.Clear()

	if players := w.Query(component.CIsPlayer, component.CPosition); len(players) > 0 {
		pos := w.MustGet(players[0], component.CPosition).(component.Position)
		r.camera.CenterOn(pos.X, pos.Y)
	}

	r.drawMap(m)
	r.drawEntities(w, m)
	r.drawHUD(w)
	r.drawLog(log)
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawGlyph draws one glyph at a world position through the camera. This is
// the primitive gameplay code may call for markers and previews.
func (r *Renderer) DrawGlyph(wx, wy int, glyph rune, color tcell.Color) {
	if !r.camera.Contains(wx, wy) {
		return
	}
	sx, sy := r.camera.WorldToScreen(wx, wy)
	r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
}

func (r *Renderer) drawMap(m *gamemap.GameMap) {
	startX, startY, endX, endY := r.camera.VisibleBounds()
	for wy := startY; wy < endY; wy++ {
		for wx := startX; wx < endX; wx++ {
			tile := m.At(wx, wy)
			if !tile.Visible && !tile.Explored {
				continue
			}

			glyph, color := tileGlyph(tile.Kind)
			if !tile.Visible {
				// Explored but unlit tiles draw from memory, dimmed.
				color = tcell.ColorDarkSlateGray
			}
			sx, sy := r.camera.WorldToScreen(wx, wy)
			r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

func tileGlyph(kind gamemap.TileKind) (rune, tcell.Color) {
	switch kind {
	case gamemap.TileWall:
		return '#', tcell.ColorGray
	case gamemap.TileDoor:
		return '+', tcell.ColorSaddleBrown
	case gamemap.TileStairsDown:
		return '>', tcell.ColorWhite
	}
	return '.', tcell.ColorDimGray
}

func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	ids := w.Query(component.CPosition, component.CDrawable)

	// Higher draw order lands on top; equal orders keep id order from Query.
	sort.SliceStable(ids, func(i, j int) bool {
		a := w.MustGet(ids[i], component.CDrawable).(component.Drawable)
		b := w.MustGet(ids[j], component.CDrawable).(component.Drawable)
		return a.Order < b.Order
	})

	for _, id := range ids {
		pos := w.MustGet(id, component.CPosition).(component.Position)
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		d := w.MustGet(id, component.CDrawable).(component.Drawable)
		r.DrawGlyph(pos.X, pos.Y, d.Glyph, d.Color)
	}
}

func (r *Renderer) drawHUD(w *ecs.World) {
	players := w.Query(component.CIsPlayer)
	if len(players) == 0 {
		return
	}
	id := players[0]

	var parts []string
	if c := w.Get(id, component.CHealth); c != nil {
		hp := c.(component.Health)
		parts = append(parts, fmt.Sprintf("HP %d/%d", hp.Current, effect.MaxHPFor(w, id, hp)))
	}
	if c := w.Get(id, component.CMana); c != nil {
		mp := c.(component.Mana)
		parts = append(parts, fmt.Sprintf("MP %d/%d", mp.Current, effect.MaxMPFor(w, id, mp)))
	}
	if c := w.Get(id, component.CExperience); c != nil {
		parts = append(parts, fmt.Sprintf("Lv %d", c.(component.Experience).Level))
	}
	if c := w.Get(id, effect.CActiveEffects); c != nil {
		if n := len(c.(effect.ActiveEffects).Effects); n > 0 {
			parts = append(parts, fmt.Sprintf("(%d effects)", n))
		}
	}

	line := ""
	for i, p := range parts {
		if i > 0 {
			line += "  "
		}
		line += p
	}
	r.drawText(0, r.camera.Height, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawLog(log *ui.MessageLog) {
	top := r.camera.Height + hudRows
	for i, msg := range log.Visible(logRows) {
		r.drawText(0, top+i, msg.Text, tcell.StyleDefault.Foreground(msg.Color))
	}
}

// drawText writes a string left to right, accounting for wide runes and
// truncating at the screen edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
