package worldgen

import "github.com/vovakirdan/cavern/internal/world"

// decorate rolls each rule over interior background cells. A successful
// roll claims the cell for decor even when the support rule then fails.
func (b *builder) decorate() {
	b.resetClaims()
	for _, rule := range b.p.Decor {
		for row := 1; row < b.p.Height-1; row++ {
			for col := 1; col < b.p.Width-1; col++ {
				if b.isClaimed(row, col) || b.grid.At(row, col) != world.CaveBackground {
					continue
				}
				if !b.roll(rule.SpawnChance) {
					continue
				}
				b.claim(row, col)
				if Supported(b.grid, row, col, rule.Kind) {
					b.grid.SetDecor(row, col, rule.Kind)
				}
			}
		}
	}
}

// Supported reports whether decor kind k may hang or stand at (row, col):
// stalactites hang from stone, bats and vines from any solid tile, flowers
// from dirt, and stalagmites stand on stone.
func Supported(g *world.Grid, row, col int, k world.TileKind) bool {
	above := g.At(row-1, col)
	switch k {
	case world.Stalactite:
		return above == world.Stone
	case world.Bat, world.Vine:
		return above.Solid()
	case world.Flower:
		return above == world.Dirt
	case world.Stalagmite:
		return g.At(row+1, col) == world.Stone
	default:
		return false
	}
}

// prune drops decor that later passes left unsupported or buried.
func (b *builder) prune() {
	for row := 0; row < b.p.Height; row++ {
		for col := 0; col < b.p.Width; col++ {
			d, ok := b.grid.Decor(row, col)
			if !ok {
				continue
			}
			if b.grid.At(row, col) != world.CaveBackground || !Supported(b.grid, row, col, d) {
				b.grid.ClearDecor(row, col)
			}
		}
	}
}
