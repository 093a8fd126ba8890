package gamemap

import "testing"

func TestNewFillsWithWalls(t *testing.T) {
	m := New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if m.At(x, y).Kind != TileWall {
				t.Fatalf("tile (%d,%d) is not a wall after New", x, y)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{10, 7, false},
		{9, 8, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v; want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBlocksMovementOutOfBounds(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 2, MakeFloor())
	if m.BlocksMovement(2, 2) {
		t.Error("floor should not block movement")
	}
	if !m.BlocksMovement(1, 1) {
		t.Error("wall should block movement")
	}
	if !m.BlocksMovement(-1, 2) || !m.BlocksMovement(2, 9) {
		t.Error("out-of-bounds tiles must block movement")
	}
}

func TestBlocksSight(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 2, MakeFloor())
	m.Set(3, 2, MakeDoor())
	if m.BlocksSight(2, 2) {
		t.Error("floor should not block sight")
	}
	if !m.BlocksSight(3, 2) {
		t.Error("doors block sight while passable")
	}
	if !m.BlocksSight(-1, 0) {
		t.Error("out-of-bounds tiles block sight")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	b := Rect{X1: 4, Y1: 4, X2: 8, Y2: 8} // shares the corner cell
	c := Rect{X1: 5, Y1: 5, X2: 8, Y2: 8}
	if !a.Intersects(b) {
		t.Error("rects sharing an edge cell intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint rects must not intersect")
	}
}
