// Package worldgen builds caves: flood-filled material blobs, decoration,
// an indestructible border, enemy spawn points and the lab along the floor.
// A generator is deterministic for a given seed.
package worldgen

import (
	"math/rand"

	"github.com/vovakirdan/cavern/internal/world"
)

// Spawn is an enemy spawn point in world units.
type Spawn struct {
	X, Y float64
}

// Result is a generated cave.
type Result struct {
	Grid   *world.Grid
	Spawns []Spawn
	Seed   int64
}

// Generator produces caves from validated parameters.
type Generator struct {
	params Params
}

// New validates params and returns a generator.
func New(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: params}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate builds a width x height cave with default parameters.
func Generate(width, height int, seed int64) (*Result, error) {
	p := DefaultParams()
	p.Width, p.Height = width, height
	gen, err := New(p)
	if err != nil {
		return nil, err
	}
	return gen.Generate(seed), nil
}

// Generate builds a cave. Every random draw comes from one source seeded
// with seed, so equal seeds give equal caves.
func (g *Generator) Generate(seed int64) *Result {
	p := g.params
	grid, _ := world.NewGrid(p.Width, p.Height) // dimensions checked by New
	b := &builder{
		p:       p,
		grid:    grid,
		rng:     rand.New(rand.NewSource(seed)),
		claimed: make([]bool, p.Width*p.Height),
	}

	b.terraform()
	b.decorate()
	b.border()
	spawns := b.spawns()
	b.lab()
	b.prune()

	return &Result{Grid: grid, Spawns: spawns, Seed: seed}
}

// builder carries the state of one generation run.
type builder struct {
	p       Params
	grid    *world.Grid
	rng     *rand.Rand
	claimed []bool
}

// roll succeeds with the given percent chance.
func (b *builder) roll(percent float64) bool {
	return b.rng.Float64()*100 < percent
}

func (b *builder) resetClaims() {
	clear(b.claimed)
}

func (b *builder) isClaimed(row, col int) bool {
	return b.claimed[row*b.p.Width+col]
}

func (b *builder) claim(row, col int) {
	b.claimed[row*b.p.Width+col] = true
}

// border turns the floor row and both side columns into Barrier.
func (b *builder) border() {
	w, h := b.p.Width, b.p.Height
	for col := 0; col < w; col++ {
		b.grid.Set(h-1, col, world.Barrier)
	}
	for row := 0; row < h; row++ {
		b.grid.Set(row, 0, world.Barrier)
		b.grid.Set(row, w-1, world.Barrier)
	}
}

// spawns draws enemy positions uniformly over the full width and the lower half.
func (b *builder) spawns() []Spawn {
	worldW := float64(b.p.Width) * b.p.TileSize
	worldH := float64(b.p.Height) * b.p.TileSize
	out := make([]Spawn, 0, b.p.EnemyCount)
	for i := 0; i < b.p.EnemyCount; i++ {
		out = append(out, Spawn{
			X: b.rng.Float64() * worldW,
			Y: worldH/2 + b.rng.Float64()*(worldH/2),
		})
	}
	return out
}
