package world

import (
	"errors"
	"strings"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewGridFilledWithBackground(t *testing.T) {
	g := mustGrid(t, 4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 4x3", g.Width(), g.Height())
	}
	if n := g.Count(CaveBackground); n != 12 {
		t.Errorf("Count(CaveBackground) = %d, expected 12", n)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := mustGrid(t, 5, 5)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if k := g.At(c.Row, c.Col); k != Barrier {
			t.Errorf("At(%d, %d) = %v, expected Barrier sentinel", c.Row, c.Col, k)
		}
		if g.Set(c.Row, c.Col, Stone) {
			t.Errorf("Set(%d, %d) should be a no-op out of bounds", c.Row, c.Col)
		}
		if _, ok := g.Decor(c.Row, c.Col); ok {
			t.Errorf("Decor(%d, %d) should be absent out of bounds", c.Row, c.Col)
		}
	}
	if g.Count(Stone) != 0 {
		t.Error("out of bounds writes must not wrap into the grid")
	}
}

func TestSetRejectsDecorKinds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if g.Set(1, 1, Bat) {
		t.Error("Set should refuse decor kinds")
	}
	if g.Set(1, 1, None) {
		t.Error("Set should refuse None")
	}
}

func TestDecorRequiresBackground(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(0, 1, Stone)

	if g.SetDecor(0, 1, Stalactite) {
		t.Error("decor must not be placed on a solid tile")
	}
	if g.SetDecor(1, 1, Stone) {
		t.Error("SetDecor should refuse non-decor kinds")
	}
	if !g.SetDecor(1, 1, Stalactite) {
		t.Fatal("SetDecor on background failed")
	}
	if d, ok := g.Decor(1, 1); !ok || d != Stalactite {
		t.Errorf("Decor(1, 1) = %v, %v", d, ok)
	}

	g.Set(1, 1, Dirt)
	if _, ok := g.Decor(1, 1); ok {
		t.Error("placing a solid tile should clear decor")
	}
}

func TestMove(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(0, 1, Water)
	g.Tick(0, 1)
	g.SetDecor(1, 1, Flower)

	if !g.Move(Cell{0, 1}, Cell{1, 1}) {
		t.Fatal("Move into background failed")
	}
	if g.At(0, 1) != CaveBackground || g.At(1, 1) != Water {
		t.Errorf("after move: src=%v dst=%v", g.At(0, 1), g.At(1, 1))
	}
	if tile, _ := g.Tile(1, 1); tile.Ticks != 0 {
		t.Errorf("moved tile should restart its counter, got %d", tile.Ticks)
	}
	if _, ok := g.Decor(1, 1); ok {
		t.Error("destination decor should be dropped")
	}

	g.Set(2, 1, Stone)
	if g.Move(Cell{1, 1}, Cell{2, 1}) {
		t.Error("Move into a solid tile should fail")
	}
	if g.Move(Cell{1, 1}, Cell{3, 1}) {
		t.Error("Move out of bounds should fail")
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(2, 2, Acid)
	g.SetDecor(1, 1, Vine)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Set(3, 3, Stone)
	if g.Equal(c) {
		t.Error("modifying the clone should not affect the original")
	}
	if g.At(3, 3) != CaveBackground {
		t.Error("clone shares storage with the original")
	}
}

func TestASCII(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.Set(1, 0, Barrier)
	g.SetDecor(0, 2, Bat)

	got := ASCII(g, 0, 10)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("ASCII produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "  w" {
		t.Errorf("row 0 = %q", lines[0])
	}
	if []rune(lines[1])[0] != '█' {
		t.Errorf("row 1 = %q", lines[1])
	}
}
