// Package geometry holds the pure targeting math shared by gameplay and
// rendering: distances, Bresenham lines, line of sight, and blast radii.
// Nothing in here touches the world; every function is restartable.
package geometry

import "math"

// Point is a lattice cell.
type Point struct {
	X, Y int
}

// Grid is the narrow map surface geometry needs. Out-of-bounds queries must
// be safe to issue.
type Grid interface {
	InBounds(x, y int) bool
	BlocksSight(x, y int) bool
}

// Chebyshev is the canonical range metric: max(|dx|, |dy|). It matches
// 8-directional movement where a diagonal step costs 1.
func Chebyshev(x1, y1, x2, y2 int) int {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	if dx > dy {
		return dx
	}
	return dy
}

// Euclidean is the straight-line distance. Range checks use Chebyshev; this
// exists for the few callers that want real distance.
func Euclidean(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// InRange reports whether the target lies within maxRange of the origin
// under the Chebyshev metric.
func InRange(originX, originY, targetX, targetY, maxRange int) bool {
	return Chebyshev(originX, originY, targetX, targetY) <= maxRange
}

// Line traces Bresenham's algorithm from (x1, y1) to (x2, y2), returning the
// ordered, inclusive cell sequence. When |dx| > |dy| the trace steps along x
// every iteration and accumulates y error; otherwise it steps along y. The
// half-cell starting error keeps the trace reproducible for a given pair.
func Line(x1, y1, x2, y2 int) []Point {
	var points []Point

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	x, y := x1, y1
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}

	if dx > dy {
		err := float64(dx) / 2
		for x != x2 {
			points = append(points, Point{x, y})
			err -= float64(dy)
			if err < 0 {
				y += sy
				err += float64(dx)
			}
			x += sx
		}
	} else {
		err := float64(dy) / 2
		for y != y2 {
			points = append(points, Point{x, y})
			err -= float64(dx)
			if err < 0 {
				x += sx
				err += float64(dy)
			}
			y += sy
		}
	}

	points = append(points, Point{x2, y2})
	return points
}

// HasLineOfSight reports whether sight runs clear between the two points.
// Only interior cells of the traced line are tested; the endpoints are never
// checked against opacity, so standing in a doorway does not blind you.
func HasLineOfSight(x1, y1, x2, y2 int, g Grid) bool {
	line := Line(x1, y1, x2, y2)
	for _, p := range line[1 : max(len(line)-1, 1)] {
		if g.BlocksSight(p.X, p.Y) {
			return false
		}
	}
	return true
}

// TilesInRadius enumerates the Chebyshev disc of the given radius around the
// center (visually a square), clamped to in-bounds cells. Radius 0 yields
// just the center; a negative radius yields nothing.
func TilesInRadius(centerX, centerY, radius int, g Grid) []Point {
	var tiles []Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			tx, ty := centerX+dx, centerY+dy
			if g.InBounds(tx, ty) {
				tiles = append(tiles, Point{tx, ty})
			}
		}
	}
	return tiles
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
