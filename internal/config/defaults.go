package config

import (
	_ "embed"
)

//go:embed defaults/cavern.yaml
var defaultCavernYAML []byte

// DefaultCavernConfig returns the default cave configuration.
func DefaultCavernConfig() CavernConfig {
	return CavernConfig{
		World: WorldConfig{
			Width:    75,
			Height:   500,
			TileSize: 40,
		},
		Terrain: TerrainConfig{
			Materials: []MaterialConfig{
				{Kind: "stone", SpawnChance: 1.5, MaxDepth: 5},
				{Kind: "dirt", SpawnChance: 1.0, MaxDepth: 4},
				{Kind: "acid", SpawnChance: 0.2, MaxDepth: 3},
				{Kind: "water", SpawnChance: 0.2, MaxDepth: 3},
			},
			EarlyStopChance: 10,
			Decor: []DecorConfig{
				{Kind: "stalagmite", SpawnChance: 50},
				{Kind: "stalactite", SpawnChance: 50},
				{Kind: "bat", SpawnChance: 10},
				{Kind: "flower", SpawnChance: 40},
				{Kind: "vine", SpawnChance: 80},
			},
			Lab: LabConfig{
				MinHeight:    10,
				MaxHeight:    15,
				Gap:          4,
				ResizeChance: 33,
				Block1Chance: 75,
			},
		},
		Liquids: LiquidConfig{
			AcidRate:  50,
			WaterRate: 25,
		},
		Player: PlayerConfig{
			Size:          30,
			SpawnY:        -100,
			ProbeRange:    3,
			MaxHealth:     100,
			RegenStep:     0.05,
			AcidDamage:    0.2,
			ContactDamage: 0.2,
			ClampToWorld:  true,
			Walking: MovementConfig{
				Speed:        3,
				Gravity:      0.12,
				JumpImpulse:  -6,
				MaxFallSpeed: 4,
			},
			Swimming: MovementConfig{
				Speed:        2,
				Gravity:      0.07,
				JumpImpulse:  -1,
				MaxFallSpeed: 3,
			},
		},
		Weapon: WeaponConfig{
			ReloadTicks:       100,
			BulletSpeed:       6,
			BulletTTL:         240,
			ExplosionRange:    3,
			ExplosionRadiusSq: 6,
		},
		Enemies: EnemyConfig{
			Count:         50,
			Speed:         2,
			ChaseDistance: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "depth",
				MaxAt: 450,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ChaseMultiplier: 0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCavernYAML
}
