// Package weapon carves the cave: explosions clear solid, movable tiles
// around an impact, and the mining gun launches the projectiles that cause them.
package weapon

import "github.com/vovakirdan/cavern/internal/world"

// Explosion describes a blast: cells within Range rows and columns of the
// centre whose squared distance is below RadiusSq are cleared.
type Explosion struct {
	Range    int
	RadiusSq int
}

// DefaultExplosion is the stock blast: range 3, squared radius 6.
func DefaultExplosion() Explosion {
	return Explosion{Range: 3, RadiusSq: 6}
}

// ApplyExplosion clears a blast of the given radius around (row, col).
// The squared-distance threshold is two thirds of radius squared.
func ApplyExplosion(g *world.Grid, row, col, radius int) int {
	return Explosion{Range: radius, RadiusSq: radius * radius * 2 / 3}.Apply(g, row, col)
}

// Apply turns every reachable cell into CaveBackground and drops its decor.
// Liquid and immovable tiles are untouched. It returns the number of tiles
// that changed kind.
func (e Explosion) Apply(g *world.Grid, row, col int) int {
	carved := 0
	for r := row - e.Range; r <= row+e.Range; r++ {
		for c := col - e.Range; c <= col+e.Range; c++ {
			if !g.InBounds(r, c) {
				continue
			}
			k := g.At(r, c)
			if k.Liquid() || k.Immovable() {
				continue
			}
			dr, dc := r-row, c-col
			if dr*dr+dc*dc >= e.RadiusSq {
				continue
			}
			if k != world.CaveBackground {
				carved++
			}
			g.Set(r, c, world.CaveBackground)
			g.ClearDecor(r, c)
		}
	}
	return carved
}
