// Package config provides YAML-based configuration loading and
// difficulty management for the cave game.
package config

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/world"
)

// CavernConfig contains every tunable of a run.
type CavernConfig struct {
	World      WorldConfig      `yaml:"world"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Liquids    LiquidConfig     `yaml:"liquids"`
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig sizes the grid.
type WorldConfig struct {
	Width    int     `yaml:"width"`     // columns
	Height   int     `yaml:"height"`    // rows
	TileSize float64 `yaml:"tile_size"` // world units per tile
}

// TerrainConfig drives the generator. Chances are percentages.
type TerrainConfig struct {
	Materials       []MaterialConfig `yaml:"materials"`
	EarlyStopChance float64          `yaml:"early_stop_chance"`
	Decor           []DecorConfig    `yaml:"decor"`
	Lab             LabConfig        `yaml:"lab"`
}

// MaterialConfig is one flood-fill pass.
type MaterialConfig struct {
	Kind        string  `yaml:"kind"`
	SpawnChance float64 `yaml:"spawn_chance"`
	MaxDepth    int     `yaml:"max_depth"`
}

// DecorConfig is one decoration rule.
type DecorConfig struct {
	Kind        string  `yaml:"kind"`
	SpawnChance float64 `yaml:"spawn_chance"`
}

// LabConfig shapes the lab along the floor.
type LabConfig struct {
	MinHeight    int     `yaml:"min_height"`
	MaxHeight    int     `yaml:"max_height"`
	Gap          int     `yaml:"gap"`
	ResizeChance float64 `yaml:"resize_chance"`
	Block1Chance float64 `yaml:"block1_chance"`
}

// LiquidConfig sets flow rates in ticks per step.
type LiquidConfig struct {
	AcidRate  int `yaml:"acid_rate"`
	WaterRate int `yaml:"water_rate"`
}

// PlayerConfig defines the player's body and health.
type PlayerConfig struct {
	Size          float64        `yaml:"size"`
	SpawnY        float64        `yaml:"spawn_y"` // above the surface when negative
	ProbeRange    int            `yaml:"probe_range"`
	MaxHealth     float64        `yaml:"max_health"`
	RegenStep     float64        `yaml:"regen_step"`
	AcidDamage    float64        `yaml:"acid_damage"`
	ContactDamage float64        `yaml:"contact_damage"`
	ClampToWorld  bool           `yaml:"clamp_to_world"`
	Walking       MovementConfig `yaml:"walking"`
	Swimming      MovementConfig `yaml:"swimming"`
}

// MovementConfig holds per-tick motion constants.
type MovementConfig struct {
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// WeaponConfig tunes the mining gun.
type WeaponConfig struct {
	ReloadTicks       int     `yaml:"reload_ticks"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletTTL         int     `yaml:"bullet_ttl"`
	ExplosionRange    int     `yaml:"explosion_range"`
	ExplosionRadiusSq int     `yaml:"explosion_radius_sq"`
}

// EnemyConfig tunes the swarm.
type EnemyConfig struct {
	Count         int     `yaml:"count"`
	Speed         float64 `yaml:"speed"`
	ChaseDistance float64 `yaml:"chase_distance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "depth", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Depth rows or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
	ChaseMultiplier float64 `yaml:"chase_multiplier"` // Added to enemy chase range at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first unusable setting.
func (c CavernConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("config: world.tile_size must be positive, got %v", c.World.TileSize)
	}
	for i, m := range c.Terrain.Materials {
		if _, ok := world.ParseKind(m.Kind); !ok {
			return fmt.Errorf("config: terrain.materials[%d]: unknown kind %q", i, m.Kind)
		}
	}
	for i, d := range c.Terrain.Decor {
		if _, ok := world.ParseKind(d.Kind); !ok {
			return fmt.Errorf("config: terrain.decor[%d]: unknown kind %q", i, d.Kind)
		}
	}
	if c.Liquids.AcidRate < 0 || c.Liquids.WaterRate < 0 {
		return fmt.Errorf("config: liquid rates must not be negative")
	}
	if c.Weapon.ReloadTicks < 0 || c.Weapon.BulletSpeed <= 0 || c.Weapon.BulletTTL <= 0 {
		return fmt.Errorf("config: weapon needs reload >= 0, positive bullet speed and ttl")
	}
	if c.Weapon.BulletSpeed >= c.World.TileSize {
		return fmt.Errorf("config: weapon.bullet_speed %v would skip tiles", c.Weapon.BulletSpeed)
	}
	if c.Weapon.ExplosionRange < 0 || c.Weapon.ExplosionRadiusSq < 0 {
		return fmt.Errorf("config: explosion range and radius must not be negative")
	}
	if c.Enemies.Count < 0 || c.Enemies.Speed < 0 || c.Enemies.ChaseDistance < 0 {
		return fmt.Errorf("config: enemy settings must not be negative")
	}
	if s := c.Difficulty.Scaling; s.SpeedMultiplier < 0 || s.ChaseMultiplier < 0 {
		return fmt.Errorf("config: difficulty multipliers must not be negative")
	}
	switch c.Difficulty.Progression.Type {
	case "depth", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}
