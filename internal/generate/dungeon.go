// Package generate builds dungeon levels. Two generators exist: Arena, a
// single walled room with pillars useful for mechanics testing, and Dungeon,
// the rooms-and-corridors layout the game actually plays on.
package generate

import (
	"math/rand"

	"glaive/internal/gamemap"
)

// Config controls dungeon generation.
type Config struct {
	Width    int
	Height   int
	MaxRooms int
	RoomMin  int // minimum room side length, excluding walls
	RoomMax  int // maximum room side length
}

// DefaultConfig is a sensible single-level layout.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 45, MaxRooms: 12, RoomMin: 5, RoomMax: 11}
}

// Dungeon generates a rooms-and-corridors level and returns the map plus the
// player start position (the center of the first room).
func Dungeon(cfg Config, rng *rand.Rand) (*gamemap.GameMap, int, int) {
	m := gamemap.New(cfg.Width, cfg.Height)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		h := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		x := 1 + rng.Intn(cfg.Width-w-2)
		y := 1 + rng.Intn(cfg.Height-h-2)
		room := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}

		overlaps := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		if len(m.Rooms) > 0 {
			// Connect to the previous room with an L-shaped corridor,
			// horizontal-first or vertical-first at random.
			px, py := m.Rooms[len(m.Rooms)-1].Center()
			cx, cy := room.Center()
			if rng.Intn(2) == 0 {
				carveHTunnel(m, px, cx, py)
				carveVTunnel(m, py, cy, cx)
			} else {
				carveVTunnel(m, py, cy, px)
				carveHTunnel(m, px, cx, cy)
			}
		}
		m.Rooms = append(m.Rooms, room)
	}

	startX, startY := cfg.Width/2, cfg.Height/2
	if len(m.Rooms) > 0 {
		startX, startY = m.Rooms[0].Center()
	}
	return m, startX, startY
}

// Arena generates one large room ringed by walls, with 2x2 pillars every
// eight tiles. Returns the map and the player start at its center.
func Arena(width, height int) (*gamemap.GameMap, int, int) {
	m := gamemap.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}

	const pillarSpacing = 8
	for py := pillarSpacing; py < height-2; py += pillarSpacing {
		for px := pillarSpacing; px < width-2; px += pillarSpacing {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					m.Set(px+dx, py+dy, gamemap.MakeWall())
				}
			}
		}
	}

	m.Rooms = []gamemap.Rect{{X1: 1, Y1: 1, X2: width - 2, Y2: height - 2}}
	return m, width / 2, height / 2
}

func carveRoom(m *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveHTunnel(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.Set(x, y, gamemap.MakeFloor())
	}
}

func carveVTunnel(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.Set(x, y, gamemap.MakeFloor())
	}
}
