package cavern

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/enemy"
	"github.com/vovakirdan/cavern/internal/liquid"
	"github.com/vovakirdan/cavern/internal/player"
	"github.com/vovakirdan/cavern/internal/weapon"
	"github.com/vovakirdan/cavern/internal/world"
	"github.com/vovakirdan/cavern/internal/worldgen"
)

// settings is everything a run derives from the configuration.
type settings struct {
	params  worldgen.Params
	phys    player.Physics
	gun     weapon.GunConfig
	swarm   enemy.Config
	liquids []liquid.Option
	spawnY  float64
}

func fromConfig(cfg config.CavernConfig) (settings, error) {
	var s settings

	params := worldgen.Params{
		Width:           cfg.World.Width,
		Height:          cfg.World.Height,
		TileSize:        cfg.World.TileSize,
		EarlyStopChance: cfg.Terrain.EarlyStopChance,
		Lab: worldgen.LabParams{
			MinHeight:    cfg.Terrain.Lab.MinHeight,
			MaxHeight:    cfg.Terrain.Lab.MaxHeight,
			Gap:          cfg.Terrain.Lab.Gap,
			ResizeChance: cfg.Terrain.Lab.ResizeChance,
			Block1Chance: cfg.Terrain.Lab.Block1Chance,
		},
		EnemyCount: cfg.Enemies.Count,
	}
	for _, m := range cfg.Terrain.Materials {
		k, ok := world.ParseKind(m.Kind)
		if !ok {
			return s, fmt.Errorf("cavern: unknown material %q", m.Kind)
		}
		params.Materials = append(params.Materials, worldgen.Material{
			Kind:        k,
			SpawnChance: m.SpawnChance,
			MaxDepth:    m.MaxDepth,
		})
	}
	for _, d := range cfg.Terrain.Decor {
		k, ok := world.ParseKind(d.Kind)
		if !ok {
			return s, fmt.Errorf("cavern: unknown decor %q", d.Kind)
		}
		params.Decor = append(params.Decor, worldgen.DecorRule{Kind: k, SpawnChance: d.SpawnChance})
	}
	if err := params.Validate(); err != nil {
		return s, err
	}

	pc := cfg.Player
	phys := player.Physics{
		TileSize:      cfg.World.TileSize,
		Size:          pc.Size,
		ProbeRange:    pc.ProbeRange,
		MaxHealth:     pc.MaxHealth,
		RegenStep:     pc.RegenStep,
		AcidDamage:    pc.AcidDamage,
		ContactDamage: pc.ContactDamage,
		Walking:       movement(pc.Walking),
		Swimming:      movement(pc.Swimming),
		ClampToWorld:  pc.ClampToWorld,
	}
	if err := phys.Validate(); err != nil {
		return s, err
	}

	s.params = params
	s.phys = phys
	s.spawnY = pc.SpawnY
	s.gun = weapon.GunConfig{
		TileSize:    cfg.World.TileSize,
		BulletSpeed: cfg.Weapon.BulletSpeed,
		BulletTTL:   cfg.Weapon.BulletTTL,
		ReloadTicks: cfg.Weapon.ReloadTicks,
		Blast: weapon.Explosion{
			Range:    cfg.Weapon.ExplosionRange,
			RadiusSq: cfg.Weapon.ExplosionRadiusSq,
		},
	}
	s.swarm = enemy.Config{
		Size:          cfg.World.TileSize,
		Speed:         cfg.Enemies.Speed,
		ChaseDistance: cfg.Enemies.ChaseDistance,
	}
	s.liquids = []liquid.Option{
		liquid.WithRate(world.Acid, cfg.Liquids.AcidRate),
		liquid.WithRate(world.Water, cfg.Liquids.WaterRate),
	}
	return s, nil
}

func movement(m config.MovementConfig) player.Movement {
	return player.Movement{
		Speed:        m.Speed,
		Gravity:      m.Gravity,
		JumpImpulse:  m.JumpImpulse,
		MaxFallSpeed: m.MaxFallSpeed,
	}
}
