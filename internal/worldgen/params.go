package worldgen

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/world"
)

// Material is one terraforming pass: seed cells roll SpawnChance (percent)
// and grow a blob by flood fill up to MaxDepth steps from the seed.
type Material struct {
	Kind        world.TileKind
	SpawnChance float64
	MaxDepth    int
}

// DecorRule places one decor kind on cells that roll SpawnChance (percent)
// and satisfy the kind's support rule.
type DecorRule struct {
	Kind        world.TileKind
	SpawnChance float64
}

// LabParams shapes the lab band along the floor.
type LabParams struct {
	MinHeight    int     // lowest roof, in rows
	MaxHeight    int     // exclusive upper bound of a re-rolled roof
	Gap          int     // empty rows kept above the roof
	ResizeChance float64 // percent chance per column to re-roll the height
	Block1Chance float64 // percent chance a wall block is LabBlock1 rather than LabBlock2
}

// Params configures the terrain generator.
type Params struct {
	Width    int     // columns
	Height   int     // rows
	TileSize float64 // world units per tile, used for spawn points

	Materials       []Material  // applied in order, later passes overwrite earlier ones
	EarlyStopChance float64     // percent chance a flood fill branch stops early
	Decor           []DecorRule // applied in order, a cell is rolled by at most one successful rule
	Lab             LabParams
	EnemyCount      int
}

// DefaultParams returns the stock 75x500 cave.
func DefaultParams() Params {
	return Params{
		Width:    75,
		Height:   500,
		TileSize: 40,
		Materials: []Material{
			{Kind: world.Stone, SpawnChance: 1.5, MaxDepth: 5},
			{Kind: world.Dirt, SpawnChance: 1.0, MaxDepth: 4},
			{Kind: world.Acid, SpawnChance: 0.2, MaxDepth: 3},
			{Kind: world.Water, SpawnChance: 0.2, MaxDepth: 3},
		},
		EarlyStopChance: 10,
		Decor: []DecorRule{
			{Kind: world.Stalagmite, SpawnChance: 50},
			{Kind: world.Stalactite, SpawnChance: 50},
			{Kind: world.Bat, SpawnChance: 10},
			{Kind: world.Flower, SpawnChance: 40},
			{Kind: world.Vine, SpawnChance: 80},
		},
		Lab: LabParams{
			MinHeight:    10,
			MaxHeight:    15,
			Gap:          4,
			ResizeChance: 33,
			Block1Chance: 75,
		},
		EnemyCount: 50,
	}
}

// ConfigError reports an unusable generator parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("worldgen: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func validPercent(p float64) bool {
	return p >= 0 && p <= 100
}

// Validate reports the first unusable parameter.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("size", "width and height must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.TileSize <= 0 {
		return invalid("tile_size", "must be positive, got %v", p.TileSize)
	}
	for i, m := range p.Materials {
		switch m.Kind {
		case world.Dirt, world.Stone, world.Acid, world.Water:
		default:
			return invalid(fmt.Sprintf("materials[%d].kind", i), "%s cannot be terraformed", m.Kind)
		}
		if m.MaxDepth < 0 {
			return invalid(fmt.Sprintf("materials[%d].max_depth", i), "must not be negative, got %d", m.MaxDepth)
		}
		if !validPercent(m.SpawnChance) {
			return invalid(fmt.Sprintf("materials[%d].spawn_chance", i), "%v is not a percentage", m.SpawnChance)
		}
	}
	if !validPercent(p.EarlyStopChance) {
		return invalid("early_stop_chance", "%v is not a percentage", p.EarlyStopChance)
	}
	for i, d := range p.Decor {
		if !d.Kind.Decor() {
			return invalid(fmt.Sprintf("decor[%d].kind", i), "%s is not a decor kind", d.Kind)
		}
		if !validPercent(d.SpawnChance) {
			return invalid(fmt.Sprintf("decor[%d].spawn_chance", i), "%v is not a percentage", d.SpawnChance)
		}
	}
	lab := p.Lab
	if lab.MinHeight < 0 || lab.MaxHeight < lab.MinHeight {
		return invalid("lab", "need 0 <= min_height <= max_height, got %d..%d", lab.MinHeight, lab.MaxHeight)
	}
	if lab.Gap < 0 {
		return invalid("lab.gap", "must not be negative, got %d", lab.Gap)
	}
	if !validPercent(lab.ResizeChance) || !validPercent(lab.Block1Chance) {
		return invalid("lab", "chances must be percentages")
	}
	if p.EnemyCount < 0 {
		return invalid("enemy_count", "must not be negative, got %d", p.EnemyCount)
	}
	return nil
}
