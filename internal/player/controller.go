// Package player moves the player's box through the cave: liquid and acid
// probing, axis-separated collision against solid tiles, jumping, damage,
// respawn, regeneration and the gun's reload counter.
package player

import (
	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/world"
)

// Mode is the player's movement mode for the current tick.
type Mode int

const (
	Walking Mode = iota
	Swimming
)

func (m Mode) String() string {
	if m == Swimming {
		return "swimming"
	}
	return "walking"
}

// Intents are the player's requests for one tick.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// State is a snapshot of the player.
type State struct {
	X, Y          float64 // top-left of the box, world units
	Size          float64
	VerticalVel   float64
	VerticalAccel float64
	Mode          Mode
	Grounded      bool // landed on top of a solid tile this tick
	CanJump       bool
	Health        float64
	Reload        int
	SpawnX        float64
	SpawnY        float64
	Respawned     bool // died and returned to spawn during the last Advance
}

// Box returns the player's bounding box.
func (s State) Box() core.RectF {
	return core.NewRectF(s.X, s.Y, s.Size, s.Size)
}

// InLiquid reports whether the player overlapped a liquid this tick.
func (s State) InLiquid() bool {
	return s.Mode == Swimming
}

// Controller owns the player state and advances it one tick at a time.
type Controller struct {
	phys Physics
	st   State
}

// NewController spawns a player at (spawnX, spawnY) with full health.
func NewController(spawnX, spawnY float64, phys Physics) *Controller {
	return &Controller{
		phys: phys,
		st: State{
			X:             spawnX,
			Y:             spawnY,
			Size:          phys.Size,
			VerticalAccel: phys.Walking.Gravity,
			Health:        phys.MaxHealth,
			SpawnX:        spawnX,
			SpawnY:        spawnY,
		},
	}
}

// State returns a snapshot of the player.
func (c *Controller) State() State { return c.st }

// Position returns the top-left of the player's box.
func (c *Controller) Position() (float64, float64) { return c.st.X, c.st.Y }

// Health returns the current health.
func (c *Controller) Health() float64 { return c.st.Health }

// Reload returns the ticks left before the gun can fire again.
func (c *Controller) Reload() int { return c.st.Reload }

// Physics returns the controller's tuning.
func (c *Controller) Physics() Physics { return c.phys }

// SetHealth overrides health, clamped to [0, MaxHealth].
func (c *Controller) SetHealth(h float64) {
	c.st.Health = core.ClampF(h, 0, c.phys.MaxHealth)
}

// Place teleports the player without touching velocity or health.
func (c *Controller) Place(x, y float64) {
	c.st.X, c.st.Y = x, y
}

// TryFire starts a reload of cooldown ticks if the gun is ready.
func (c *Controller) TryFire(cooldown int) bool {
	if c.st.Reload > 0 {
		return false
	}
	c.st.Reload = cooldown
	return true
}

// Advance simulates one tick against g. enemies are the boxes of live
// enemies; each one overlapping the player deals contact damage.
func (c *Controller) Advance(g *world.Grid, in Intents, enemies ...core.RectF) State {
	st := &c.st
	st.Respawned = false

	mv := c.probe(g)
	st.VerticalAccel = mv.Gravity
	st.VerticalVel = min(st.VerticalVel, mv.MaxFallSpeed)

	dx := 0.0
	if in.MoveLeft {
		dx -= mv.Speed
	}
	if in.MoveRight {
		dx += mv.Speed
	}
	st.X += dx
	if c.phys.ClampToWorld {
		st.X = core.ClampF(st.X, 0, float64(g.Width())*c.phys.TileSize-st.Size)
	}
	c.resolveX(g)

	if in.Jump && st.CanJump {
		st.VerticalVel = mv.JumpImpulse
	}
	st.Y += st.VerticalVel
	st.VerticalVel += st.VerticalAccel
	c.resolveY(g)
	st.CanJump = st.Grounded

	box := st.Box()
	for _, e := range enemies {
		if box.Intersects(e) {
			c.damage(c.phys.ContactDamage)
		}
	}

	// Respawn moves the player only; health recovers through regen.
	if st.Health <= 0 {
		st.X, st.Y = st.SpawnX, st.SpawnY
		st.Respawned = true
	}

	if st.Health < c.phys.MaxHealth {
		st.Health = min(st.Health+c.phys.RegenStep, c.phys.MaxHealth)
	}
	if st.Reload > 0 {
		st.Reload--
	}
	return c.st
}

// probe scans the tiles around the player before it moves. Overlapping any
// liquid switches to swimming for this tick; overlapping acid hurts once.
func (c *Controller) probe(g *world.Grid) Movement {
	st := &c.st
	box := st.Box()
	liquid, harmful := false, false
	c.each(g, func(k world.TileKind, tile core.RectF) {
		if !box.Intersects(tile) {
			return
		}
		liquid = liquid || k.Liquid()
		harmful = harmful || k.Harmful()
	})

	if harmful {
		c.damage(c.phys.AcidDamage)
	}
	if liquid {
		st.Mode = Swimming
		st.CanJump = true
		return c.phys.Swimming
	}
	st.Mode = Walking
	return c.phys.Walking
}

func (c *Controller) damage(amount float64) {
	c.st.Health = max(c.st.Health-amount, 0)
}
