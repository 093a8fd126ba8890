package render

// Camera translates between world coordinates and screen coordinates. The
// viewport is clamped to the map so the view never shows past its edges on
// maps larger than the screen.
type Camera struct {
	X, Y          int // top-left corner of the viewport, in world tiles
	Width, Height int // viewport size, in tiles
	MapWidth      int
	MapHeight     int
}

// NewCamera creates a camera for a viewport of the given size over a map of
// the given size.
func NewCamera(width, height, mapWidth, mapHeight int) *Camera {
	return &Camera{Width: width, Height: height, MapWidth: mapWidth, MapHeight: mapHeight}
}

// CenterOn repositions the viewport so the target is as close to the middle
// as the map edges allow.
func (c *Camera) CenterOn(targetX, targetY int) {
	c.X = clamp(targetX-c.Width/2, 0, max(0, c.MapWidth-c.Width))
	c.Y = clamp(targetY-c.Height/2, 0, max(0, c.MapHeight-c.Height))
}

// WorldToScreen converts world (wx, wy) to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy int) (int, int) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.X, sy + c.Y
}

// Contains reports whether the world position is inside the viewport.
func (c *Camera) Contains(wx, wy int) bool {
	return wx >= c.X && wx < c.X+c.Width && wy >= c.Y && wy < c.Y+c.Height
}

// VisibleBounds returns the world-coordinate rectangle the viewport covers,
// clipped to the map: [startX, endX) × [startY, endY).
func (c *Camera) VisibleBounds() (startX, startY, endX, endY int) {
	return c.X, c.Y, min(c.X+c.Width, c.MapWidth), min(c.Y+c.Height, c.MapHeight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
