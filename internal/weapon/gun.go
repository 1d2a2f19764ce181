package weapon

import (
	"math"

	"github.com/vovakirdan/cavern/internal/world"
)

// GunConfig tunes the mining gun.
type GunConfig struct {
	TileSize    float64
	BulletSpeed float64 // world units per tick
	BulletTTL   int     // ticks before a bullet fizzles
	ReloadTicks int
	Blast       Explosion
}

// DefaultGunConfig returns the stock gun for 40-unit tiles.
func DefaultGunConfig() GunConfig {
	return GunConfig{
		TileSize:    40,
		BulletSpeed: 6,
		BulletTTL:   240,
		ReloadTicks: 100,
		Blast:       DefaultExplosion(),
	}
}

// Bullet is a projectile in flight.
type Bullet struct {
	X, Y  float64
	Theta float64
	Age   int
}

// Impact records a bullet that hit a solid tile.
type Impact struct {
	Row, Col int
	X, Y     float64
	Carved   int
}

// Gun tracks bullets in flight.
type Gun struct {
	cfg     GunConfig
	bullets []Bullet
}

// NewGun creates an empty gun.
func NewGun(cfg GunConfig) *Gun {
	return &Gun{cfg: cfg}
}

// Config returns the gun's tuning.
func (gun *Gun) Config() GunConfig {
	return gun.cfg
}

// Fire launches a bullet from (x, y) along theta radians.
func (gun *Gun) Fire(x, y, theta float64) {
	gun.bullets = append(gun.bullets, Bullet{X: x, Y: y, Theta: theta})
}

// Bullets returns the bullets in flight.
func (gun *Gun) Bullets() []Bullet {
	return gun.bullets
}

// Clear drops every bullet.
func (gun *Gun) Clear() {
	gun.bullets = gun.bullets[:0]
}

// Update moves every bullet one step. Bullets entering a solid tile explode
// there; bullets leaving the grid or outliving their TTL vanish.
func (gun *Gun) Update(g *world.Grid) []Impact {
	var impacts []Impact
	live := gun.bullets[:0]
	for _, b := range gun.bullets {
		b.X += gun.cfg.BulletSpeed * math.Cos(b.Theta)
		b.Y += gun.cfg.BulletSpeed * math.Sin(b.Theta)
		b.Age++

		row := int(math.Floor(b.Y / gun.cfg.TileSize))
		col := int(math.Floor(b.X / gun.cfg.TileSize))
		if !g.InBounds(row, col) || b.Age > gun.cfg.BulletTTL {
			// Bullets above the surface keep flying until they expire.
			if row < 0 && col >= 0 && col < g.Width() && b.Age <= gun.cfg.BulletTTL {
				live = append(live, b)
			}
			continue
		}
		if g.At(row, col).Solid() {
			impacts = append(impacts, Impact{
				Row:    row,
				Col:    col,
				X:      b.X,
				Y:      b.Y,
				Carved: gun.cfg.Blast.Apply(g, row, col),
			})
			continue
		}
		live = append(live, b)
	}
	gun.bullets = live
	return impacts
}
