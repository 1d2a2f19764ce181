package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cavern/internal/core"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")

// Cell addresses a grid position. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// Tile is one entry of the tile layer.
type Tile struct {
	Kind  TileKind
	Ticks int // ticks since the last flow step, liquids only
}

// Grid is the cave: a tile layer and a decor layer of equal extent.
// Both layers are stored row-major: index = row*W + col.
type Grid struct {
	w, h  int
	tiles []Tile
	decor []TileKind
}

// NewGrid allocates a width x height grid filled with CaveBackground.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		w:     width,
		h:     height,
		tiles: make([]Tile, width*height),
		decor: make([]TileKind, width*height),
	}
	for i := range g.tiles {
		g.tiles[i].Kind = CaveBackground
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) index(row, col int) int {
	return row*g.w + col
}

// At returns the tile kind at (row, col). Out-of-bounds cells read as Barrier.
func (g *Grid) At(row, col int) TileKind {
	if !g.InBounds(row, col) {
		return Barrier
	}
	return g.tiles[g.index(row, col)].Kind
}

// Tile returns the full tile at (row, col) and whether the cell exists.
func (g *Grid) Tile(row, col int) (Tile, bool) {
	if !g.InBounds(row, col) {
		return Tile{Kind: Barrier}, false
	}
	return g.tiles[g.index(row, col)], true
}

// Set replaces the tile at (row, col) with a fresh tile of kind k.
// Decor kinds and None are rejected. Placing anything other than
// CaveBackground clears the cell's decor.
func (g *Grid) Set(row, col int, k TileKind) bool {
	if !g.InBounds(row, col) || k == None || k.Decor() || k >= kindCount {
		return false
	}
	i := g.index(row, col)
	g.tiles[i] = Tile{Kind: k}
	if k != CaveBackground {
		g.decor[i] = None
	}
	return true
}

// Decor returns the decor at (row, col), if any.
func (g *Grid) Decor(row, col int) (TileKind, bool) {
	if !g.InBounds(row, col) {
		return None, false
	}
	d := g.decor[g.index(row, col)]
	return d, d != None
}

// SetDecor places decor kind k at (row, col). It refuses non-decor kinds
// and cells whose tile is not CaveBackground.
func (g *Grid) SetDecor(row, col int, k TileKind) bool {
	if !g.InBounds(row, col) || !k.Decor() {
		return false
	}
	i := g.index(row, col)
	if g.tiles[i].Kind != CaveBackground {
		return false
	}
	g.decor[i] = k
	return true
}

// ClearDecor removes any decor at (row, col).
func (g *Grid) ClearDecor(row, col int) {
	if g.InBounds(row, col) {
		g.decor[g.index(row, col)] = None
	}
}

// Move carries the tile at from into the CaveBackground cell at to.
// The source becomes CaveBackground, the moved tile's counter restarts
// and any decor at the destination is dropped.
func (g *Grid) Move(from, to Cell) bool {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return false
	}
	src, dst := g.index(from.Row, from.Col), g.index(to.Row, to.Col)
	if g.tiles[dst].Kind != CaveBackground {
		return false
	}
	g.tiles[dst] = Tile{Kind: g.tiles[src].Kind}
	g.decor[dst] = None
	g.tiles[src] = Tile{Kind: CaveBackground}
	return true
}

// Tick advances the counter of the tile at (row, col) and returns the new value.
func (g *Grid) Tick(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	i := g.index(row, col)
	g.tiles[i].Ticks++
	return g.tiles[i].Ticks
}

// ResetTicks zeroes the counter of the tile at (row, col).
func (g *Grid) ResetTicks(row, col int) {
	if g.InBounds(row, col) {
		g.tiles[g.index(row, col)].Ticks = 0
	}
}

// Count returns how many cells hold kind k. Decor kinds are counted in the decor layer.
func (g *Grid) Count(k TileKind) int {
	n := 0
	if k.Decor() {
		for _, d := range g.decor {
			if d == k {
				n++
			}
		}
		return n
	}
	for _, t := range g.tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Counts tallies every kind present in either layer.
func (g *Grid) Counts() map[TileKind]int {
	out := make(map[TileKind]int)
	for i, t := range g.tiles {
		out[t.Kind]++
		if d := g.decor[i]; d != None {
			out[d]++
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		w:     g.w,
		h:     g.h,
		tiles: make([]Tile, len(g.tiles)),
		decor: make([]TileKind, len(g.decor)),
	}
	copy(c.tiles, g.tiles)
	copy(c.decor, g.decor)
	return c
}

// Equal reports whether two grids hold the same kinds and decor.
// Tick counters are ignored.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i].Kind != o.tiles[i].Kind || g.decor[i] != o.decor[i] {
			return false
		}
	}
	return true
}

// TileRect returns the world-space box of (row, col) for a tile size.
func TileRect(row, col int, size float64) core.RectF {
	return core.NewRectF(float64(col)*size, float64(row)*size, size, size)
}

// Glyph returns the preview character of a cell: decor wins over background.
func (g *Grid) Glyph(row, col int) rune {
	if d, ok := g.Decor(row, col); ok {
		return d.Glyph()
	}
	return g.At(row, col).Glyph()
}
