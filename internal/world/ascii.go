package world

import "strings"

// ASCII renders rows [from, from+n) of the grid as text, one line per row.
// Rows outside the grid are skipped.
func ASCII(g *Grid, from, n int) string {
	if from < 0 {
		from = 0
	}
	end := min(from+n, g.h)

	var sb strings.Builder
	sb.Grow((g.w + 1) * max(end-from, 0))
	for row := from; row < end; row++ {
		if row > from {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.w; col++ {
			sb.WriteRune(g.Glyph(row, col))
		}
	}
	return sb.String()
}
