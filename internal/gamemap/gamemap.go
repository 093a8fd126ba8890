package gamemap

import "glaive/internal/ecs"

// RMap is the resource slot for the current level's map.
const RMap ecs.ResourceType = 1

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid and room list for one dungeon level.
// It doubles as the world's map resource and as the geometry Grid.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

func (*GameMap) ResourceType() ecs.ResourceType { return RMap }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// BlocksMovement reports whether (x, y) cannot be walked on. Everything
// outside the map blocks movement.
func (m *GameMap) BlocksMovement(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return !m.Tiles[y][x].Walkable
}

// BlocksSight reports whether (x, y) stops line of sight. Everything outside
// the map blocks sight.
func (m *GameMap) BlocksSight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return !m.Tiles[y][x].Transparent
}

// IsVisible reports whether (x, y) is currently lit by the FOV pass.
func (m *GameMap) IsVisible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Visible
}
