package worldgen

import "github.com/vovakirdan/cavern/internal/world"

// lab raises the lab along the floor: a wall of lab blocks per interior
// column whose height drifts between columns, capped by LabBlock3 and kept
// clear above by Gap empty rows.
func (b *builder) lab() {
	lp := b.p.Lab
	floor := b.p.Height - 2
	height := lp.MinHeight

	for col := 1; col < b.p.Width-1; col++ {
		if lp.MaxHeight > lp.MinHeight && b.roll(lp.ResizeChance) {
			height = lp.MinHeight + b.rng.Intn(lp.MaxHeight-lp.MinHeight)
		}

		for j := 0; j < height; j++ {
			row := floor - j
			if !b.grid.InBounds(row, col) {
				break
			}
			kind := world.LabBlock2
			if j == height-1 {
				kind = world.LabBlock3
			} else if b.roll(lp.Block1Chance) {
				kind = world.LabBlock1
			}
			b.grid.Set(row, col, kind)
		}

		for j := 0; j < lp.Gap; j++ {
			row := floor - height - j
			if !b.grid.InBounds(row, col) {
				break
			}
			b.grid.Set(row, col, world.CaveBackground)
		}
	}
}
