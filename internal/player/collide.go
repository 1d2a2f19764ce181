package player

import (
	"math"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/world"
)

// maxPasses bounds the vertical resolution loop.
const maxPasses = 4

// each calls fn for every in-bounds tile within ProbeRange of the player's
// tile, row by row. The window is computed once, from the current position.
func (c *Controller) each(g *world.Grid, fn func(k world.TileKind, tile core.RectF)) {
	ts := c.phys.TileSize
	r := c.phys.ProbeRange
	col0 := int(math.Floor(c.st.X / ts))
	row0 := int(math.Floor(c.st.Y / ts))

	for row := row0 - r; row <= row0+r; row++ {
		for col := col0 - r; col <= col0+r; col++ {
			if !g.InBounds(row, col) {
				continue
			}
			fn(g.At(row, col), world.TileRect(row, col, ts))
		}
	}
}

// resolveX pushes the player out of every solid tile it overlaps, toward
// the side its current x lies on. There is no sub-stepping: a body moving
// a full tile per tick could pass through thin walls.
func (c *Controller) resolveX(g *world.Grid) {
	st := &c.st
	c.each(g, func(k world.TileKind, tile core.RectF) {
		if !k.Solid() || !st.Box().Intersects(tile) {
			return
		}
		if st.X < tile.X {
			st.X = tile.X - st.Size
		} else {
			st.X = tile.Right()
		}
	})
}

// resolveY stops vertical motion on every solid overlap and snaps the player
// onto the tile's top or under its bottom. Landing on a top edge grounds the
// player. Passes repeat until nothing overlaps.
func (c *Controller) resolveY(g *world.Grid) {
	st := &c.st
	st.Grounded = false
	for pass := 0; pass < maxPasses; pass++ {
		hit := false
		c.each(g, func(k world.TileKind, tile core.RectF) {
			if !k.Solid() || !st.Box().Intersects(tile) {
				return
			}
			hit = true
			st.VerticalVel = 0
			if st.Y < tile.Y {
				st.Y = tile.Y - st.Size
				st.Grounded = true
			} else {
				st.Y = tile.Bottom()
			}
		})
		if !hit {
			return
		}
	}
}
