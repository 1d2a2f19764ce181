// Package liquid advances acid and water through the cave. Each liquid tile
// counts ticks and, once its kind's rate is reached, takes one flow step:
// down if the cell below is open, otherwise to one randomly chosen side.
package liquid

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/cavern/internal/world"
)

// Option configures an Automaton.
type Option func(*Automaton)

// WithRate overrides the flow rate of a liquid kind. Rates <= 0 freeze it.
func WithRate(k world.TileKind, ticks int) Option {
	return func(a *Automaton) {
		a.rates[k] = ticks
	}
}

// Report summarises one tick.
type Report struct {
	Due   int // tiles that reached their rate this tick
	Moved int // tiles that flowed
}

// Automaton owns the flow schedule of one grid.
type Automaton struct {
	rng       *rand.Rand
	rates     map[world.TileKind]int
	scheduled mapset.Set[world.Cell]
	order     []world.Cell
}

// New creates an automaton drawing side choices from rng.
func New(rng *rand.Rand, opts ...Option) *Automaton {
	a := &Automaton{
		rng:       rng,
		rates:     make(map[world.TileKind]int),
		scheduled: mapset.New[world.Cell](),
	}
	for _, k := range world.Kinds() {
		if k.Liquid() {
			a.rates[k] = k.UpdateRate()
		}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rate returns the flow rate used for kind k.
func (a *Automaton) Rate(k world.TileKind) int {
	return a.rates[k]
}

// Track replaces the schedule with every liquid tile currently in g.
func (a *Automaton) Track(g *world.Grid) {
	a.scheduled.Clear()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col).Liquid() {
				a.scheduled.Put(world.Cell{Row: row, Col: col})
			}
		}
	}
}

// Len returns the number of scheduled liquid tiles.
func (a *Automaton) Len() int {
	return a.scheduled.Size()
}

// Tick advances every scheduled liquid tile by one tick. Tiles are visited
// bottom row first, left to right, so the outcome depends only on the grid
// and the rng.
func (a *Automaton) Tick(g *world.Grid) Report {
	var rep Report
	for _, c := range a.snapshot() {
		kind := g.At(c.Row, c.Col)
		if !g.InBounds(c.Row, c.Col) || !kind.Liquid() {
			a.scheduled.Remove(c)
			continue
		}
		rate := a.rates[kind]
		if rate <= 0 || g.Tick(c.Row, c.Col) < rate {
			continue
		}
		g.ResetTicks(c.Row, c.Col)
		rep.Due++

		dst, ok := a.target(g, c)
		if !ok || !g.Move(c, dst) {
			continue
		}
		a.scheduled.Remove(c)
		a.scheduled.Put(dst)
		rep.Moved++
	}
	return rep
}

// target picks the flow destination of the tile at c.
func (a *Automaton) target(g *world.Grid, c world.Cell) (world.Cell, bool) {
	below := world.Cell{Row: c.Row + 1, Col: c.Col}
	if open(g, below) {
		return below, true
	}
	side := world.Cell{Row: c.Row, Col: c.Col - 1}
	if a.rng.Intn(2) == 0 {
		side.Col = c.Col + 1
	}
	if open(g, side) {
		return side, true
	}
	return world.Cell{}, false
}

func open(g *world.Grid, c world.Cell) bool {
	return g.InBounds(c.Row, c.Col) && g.At(c.Row, c.Col) == world.CaveBackground
}

// snapshot returns the schedule in processing order.
func (a *Automaton) snapshot() []world.Cell {
	a.order = a.order[:0]
	a.scheduled.Each(func(c world.Cell) {
		a.order = append(a.order, c)
	})
	slices.SortFunc(a.order, func(x, y world.Cell) int {
		if x.Row != y.Row {
			return cmp.Compare(y.Row, x.Row)
		}
		return cmp.Compare(x.Col, y.Col)
	})
	return a.order
}
