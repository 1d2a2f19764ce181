package player

import "fmt"

// Movement holds the per-tick constants of one movement mode.
type Movement struct {
	Speed        float64 // horizontal distance per tick
	Gravity      float64 // added to vertical velocity every tick
	JumpImpulse  float64 // vertical velocity set by a jump (negative is up)
	MaxFallSpeed float64 // cap applied to vertical velocity before moving
}

// Physics configures a Controller. Distances are world units per tick.
type Physics struct {
	TileSize      float64
	Size          float64 // side of the player's square box
	ProbeRange    int     // tiles scanned around the player for contacts
	MaxHealth     float64
	RegenStep     float64
	AcidDamage    float64
	ContactDamage float64
	Walking       Movement
	Swimming      Movement
	// ClampToWorld keeps the player's box inside the grid's horizontal extent.
	ClampToWorld bool
}

// DefaultPhysics returns the stock tuning for 40-unit tiles.
func DefaultPhysics() Physics {
	return Physics{
		TileSize:      40,
		Size:          30,
		ProbeRange:    3,
		MaxHealth:     100,
		RegenStep:     0.05,
		AcidDamage:    0.2,
		ContactDamage: 0.2,
		Walking: Movement{
			Speed:        3,
			Gravity:      0.12,
			JumpImpulse:  -6,
			MaxFallSpeed: 4,
		},
		Swimming: Movement{
			Speed:        2,
			Gravity:      0.07,
			JumpImpulse:  -1,
			MaxFallSpeed: 3,
		},
		ClampToWorld: true,
	}
}

// Validate checks that the tuning can be simulated. The box must fit a
// one-tile gap and per-tick motion must stay below a tile.
func (p Physics) Validate() error {
	if p.TileSize <= 0 {
		return fmt.Errorf("player: tile size must be positive, got %v", p.TileSize)
	}
	if p.Size <= 0 || p.Size > p.TileSize {
		return fmt.Errorf("player: size %v must be in (0, %v]", p.Size, p.TileSize)
	}
	if p.ProbeRange < 1 {
		return fmt.Errorf("player: probe range must be at least 1, got %d", p.ProbeRange)
	}
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player: max health must be positive, got %v", p.MaxHealth)
	}
	for i, m := range []Movement{p.Walking, p.Swimming} {
		if m.Speed < 0 || m.Speed >= p.TileSize || m.MaxFallSpeed >= p.TileSize || -m.JumpImpulse >= p.TileSize {
			return fmt.Errorf("player: %s motion must stay below one tile per tick", Mode(i))
		}
	}
	return nil
}
