package worldgen

// fill is a pending flood fill visit.
type fill struct {
	row, col, depth int
}

// terraform runs one seeding pass per material. Seeds are scanned above the
// lab band so the floor stays clear for it.
func (b *builder) terraform() {
	lastRow := b.p.Height - b.p.Lab.MaxHeight
	for _, m := range b.p.Materials {
		b.resetClaims()
		for row := 0; row < lastRow; row++ {
			for col := 0; col < b.p.Width; col++ {
				if b.isClaimed(row, col) {
					continue
				}
				if b.roll(m.SpawnChance) {
					b.floodFill(row, col, m)
				}
			}
		}
	}
}

// floodFill grows a blob of m.Kind from (row, col). Visits stop past
// MaxDepth, on an early-stop roll, on edge cells and on cells already
// claimed in this pass.
func (b *builder) floodFill(row, col int, m Material) {
	stack := []fill{{row, col, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > m.MaxDepth {
			continue
		}
		if !b.interior(f.row, f.col) || b.isClaimed(f.row, f.col) {
			continue
		}
		if b.roll(b.p.EarlyStopChance) {
			continue
		}

		b.grid.Set(f.row, f.col, m.Kind)
		b.claim(f.row, f.col)

		// Pushed in reverse so they pop up, down, left, right.
		next := f.depth + 1
		stack = append(stack,
			fill{f.row, f.col + 1, next},
			fill{f.row, f.col - 1, next},
			fill{f.row + 1, f.col, next},
			fill{f.row - 1, f.col, next},
		)
	}
}

// interior reports whether (row, col) is in bounds and off the outer ring.
func (b *builder) interior(row, col int) bool {
	return row >= 1 && row < b.p.Height-1 && col >= 1 && col < b.p.Width-1
}

