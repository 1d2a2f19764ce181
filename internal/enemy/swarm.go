// Package enemy runs the cave's hostile creatures: they drift straight at
// the player once it comes within chase range, ignoring terrain.
package enemy

import (
	"math"

	"github.com/vovakirdan/cavern/internal/core"
)

// Config tunes the swarm.
type Config struct {
	Size          float64 // side of an enemy's square box
	Speed         float64 // world units per tick
	ChaseDistance float64
}

// DefaultConfig returns the stock swarm for 40-unit tiles.
func DefaultConfig() Config {
	return Config{Size: 40, Speed: 2, ChaseDistance: 300}
}

// Enemy is one creature.
type Enemy struct {
	X, Y  float64
	Alive bool
}

// Swarm is every enemy in the cave.
type Swarm struct {
	cfg     Config
	enemies []Enemy
}

// NewSwarm creates an empty swarm.
func NewSwarm(cfg Config) *Swarm {
	return &Swarm{cfg: cfg}
}

// Add places a live enemy with its top-left at (x, y).
func (s *Swarm) Add(x, y float64) {
	s.enemies = append(s.enemies, Enemy{X: x, Y: y, Alive: true})
}

// Speed returns the current chase speed.
func (s *Swarm) Speed() float64 {
	return s.cfg.Speed
}

// SetSpeed changes the chase speed of every enemy.
func (s *Swarm) SetSpeed(v float64) {
	s.cfg.Speed = v
}

// SetChaseDistance changes how close the player must come to be chased.
func (s *Swarm) SetChaseDistance(d float64) {
	s.cfg.ChaseDistance = d
}

// Enemies returns every enemy, dead or alive.
func (s *Swarm) Enemies() []Enemy {
	return s.enemies
}

// Alive returns the number of live enemies.
func (s *Swarm) Alive() int {
	n := 0
	for _, e := range s.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Update moves every live enemy within chase range toward (px, py).
func (s *Swarm) Update(px, py float64) {
	limit := s.cfg.ChaseDistance * s.cfg.ChaseDistance
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Alive {
			continue
		}
		dx, dy := px-e.X, py-e.Y
		if dx*dx+dy*dy >= limit {
			continue
		}
		theta := math.Atan2(dy, dx)
		e.X += math.Cos(theta) * s.cfg.Speed
		e.Y += math.Sin(theta) * s.cfg.Speed
	}
}

// Boxes returns the bounding boxes of live enemies.
func (s *Swarm) Boxes() []core.RectF {
	boxes := make([]core.RectF, 0, len(s.enemies))
	for _, e := range s.enemies {
		if e.Alive {
			boxes = append(boxes, core.NewRectF(e.X, e.Y, s.cfg.Size, s.cfg.Size))
		}
	}
	return boxes
}

// Blast kills live enemies whose centre lies within radius of (x, y) and
// returns how many died.
func (s *Swarm) Blast(x, y, radius float64) int {
	killed := 0
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Alive {
			continue
		}
		cx, cy := e.X+s.cfg.Size/2, e.Y+s.cfg.Size/2
		if math.Hypot(cx-x, cy-y) <= radius {
			e.Alive = false
			killed++
		}
	}
	return killed
}
