package player

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/world"
	"github.com/vovakirdan/cavern/internal/worldgen"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// floorGrid is a 10x10 cave with a stone floor on row 8 (top edge at y=320).
func floorGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(10, 10)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for col := 0; col < 10; col++ {
		g.Set(8, col, world.Stone)
	}
	return g
}

func settle(g *world.Grid, c *Controller, ticks int) {
	for i := 0; i < ticks; i++ {
		c.Advance(g, Intents{})
	}
}

func TestFallsAndLandsOnFloor(t *testing.T) {
	g := floorGrid(t)
	c := NewController(100, 100, DefaultPhysics())

	settle(g, c, 300)
	st := c.State()
	if !approx(st.Y, 320-st.Size) {
		t.Fatalf("Y = %f, expected to rest at %f", st.Y, 320-st.Size)
	}
	if st.X != 100 {
		t.Errorf("X drifted to %f", st.X)
	}

	grounded := false
	for i := 0; i < 2; i++ {
		grounded = grounded || c.Advance(g, Intents{}).Grounded
	}
	if !grounded {
		t.Error("a resting player should touch the floor at least every other tick")
	}
}

func TestNoJumpInMidair(t *testing.T) {
	g := floorGrid(t)
	c := NewController(100, 20, DefaultPhysics())

	st := c.Advance(g, Intents{Jump: true})
	if st.VerticalVel < 0 {
		t.Errorf("jumped in mid-air, vertical velocity %f", st.VerticalVel)
	}
}

func TestJumpFromGround(t *testing.T) {
	g := floorGrid(t)
	phys := DefaultPhysics()
	c := NewController(100, 100, phys)
	settle(g, c, 300)
	for !c.State().CanJump {
		c.Advance(g, Intents{})
	}

	st := c.Advance(g, Intents{Jump: true})
	if !approx(st.VerticalVel, phys.Walking.JumpImpulse+phys.Walking.Gravity) {
		t.Errorf("VerticalVel = %f after jump, expected %f", st.VerticalVel, phys.Walking.JumpImpulse+phys.Walking.Gravity)
	}
	if st.Y >= 320-st.Size {
		t.Errorf("player did not leave the floor, Y = %f", st.Y)
	}
}

func TestWallsStopHorizontalMotion(t *testing.T) {
	g := floorGrid(t)
	for row := 0; row < 8; row++ {
		g.Set(row, 5, world.Stone)
	}

	c := NewController(100, 290, DefaultPhysics())
	for i := 0; i < 100; i++ {
		c.Advance(g, Intents{MoveRight: true})
	}
	if x, _ := c.Position(); !approx(x, 200-30) {
		t.Errorf("moving right: X = %f, expected %f", x, 200.0-30)
	}

	c = NewController(280, 290, DefaultPhysics())
	for i := 0; i < 100; i++ {
		c.Advance(g, Intents{MoveLeft: true})
	}
	if x, _ := c.Position(); !approx(x, 240) {
		t.Errorf("moving left: X = %f, expected 240", x)
	}
}

func TestHeadHitsCeiling(t *testing.T) {
	g := floorGrid(t)
	for col := 0; col < 10; col++ {
		g.Set(6, col, world.Stone)
	}
	c := NewController(100, 290, DefaultPhysics())
	settle(g, c, 10)
	for !c.State().CanJump {
		c.Advance(g, Intents{})
	}
	c.Advance(g, Intents{Jump: true})
	for i := 0; i < 30; i++ {
		st := c.Advance(g, Intents{})
		if st.Y < 280 {
			t.Fatalf("tick %d: player passed into the ceiling, Y = %f", i, st.Y)
		}
	}
}

func TestContainmentOnGeneratedCave(t *testing.T) {
	res, err := worldgen.Generate(30, 80, 13)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g := res.Grid
	phys := DefaultPhysics()
	c := NewController(float64(g.Width())*phys.TileSize/2, -100, phys)
	rng := rand.New(rand.NewSource(5))

	var in Intents
	for tick := 0; tick < 5000; tick++ {
		if tick%20 == 0 {
			in = Intents{
				MoveLeft:  rng.Intn(3) == 0,
				MoveRight: rng.Intn(2) == 0,
				Jump:      rng.Intn(2) == 0,
			}
		}
		st := c.Advance(g, in)
		box := st.Box()
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if g.At(row, col).Solid() && box.Intersects(world.TileRect(row, col, phys.TileSize)) {
					t.Fatalf("tick %d: player box %+v overlaps solid (%d, %d)", tick, box, row, col)
				}
			}
		}
	}
}

func TestSwimming(t *testing.T) {
	g, _ := world.NewGrid(5, 20)
	for row := 0; row < 20; row++ {
		g.Set(row, 2, world.Water)
	}
	phys := DefaultPhysics()
	c := NewController(85, 0, phys)

	var st State
	for i := 0; i < 200; i++ {
		st = c.Advance(g, Intents{})
		if st.Mode != Swimming {
			t.Fatalf("tick %d: expected swimming inside a water column", i)
		}
		if st.VerticalVel > phys.Swimming.MaxFallSpeed+phys.Swimming.Gravity+eps {
			t.Fatalf("tick %d: vertical velocity %f exceeds the swimming cap", i, st.VerticalVel)
		}
	}

	st = c.Advance(g, Intents{Jump: true})
	if !approx(st.VerticalVel, phys.Swimming.JumpImpulse+phys.Swimming.Gravity) {
		t.Errorf("swim stroke velocity = %f, expected %f", st.VerticalVel, phys.Swimming.JumpImpulse+phys.Swimming.Gravity)
	}
}

func TestAcidDamagesOncePerTick(t *testing.T) {
	g := floorGrid(t)
	g.Set(7, 2, world.Acid)
	g.Set(7, 3, world.Acid)
	phys := DefaultPhysics()
	// Straddles both acid tiles.
	c := NewController(105, 290, phys)

	st := c.Advance(g, Intents{})
	want := phys.MaxHealth - phys.AcidDamage + phys.RegenStep
	if !approx(st.Health, want) {
		t.Errorf("Health = %f, expected %f", st.Health, want)
	}
	if st.Mode != Swimming {
		t.Error("acid is a liquid and should switch to swimming")
	}
}

func TestWaterIsHarmless(t *testing.T) {
	g := floorGrid(t)
	g.Set(7, 2, world.Water)
	c := NewController(85, 290, DefaultPhysics())

	if st := c.Advance(g, Intents{}); st.Health != 100 {
		t.Errorf("water should not hurt, Health = %f", st.Health)
	}
}

func TestEnemyContact(t *testing.T) {
	g := floorGrid(t)
	phys := DefaultPhysics()
	c := NewController(100, 290, phys)

	enemies := []core.RectF{
		core.NewRectF(110, 280, 40, 40),
		core.NewRectF(80, 300, 40, 40),
		core.NewRectF(200, 280, 40, 40),
	}
	st := c.Advance(g, Intents{}, enemies...)
	want := phys.MaxHealth - 2*phys.ContactDamage + phys.RegenStep
	if !approx(st.Health, want) {
		t.Errorf("Health = %f, expected %f", st.Health, want)
	}
}

func TestDeathRespawnKeepsHealth(t *testing.T) {
	g := floorGrid(t)
	phys := DefaultPhysics()
	c := NewController(40, 40, phys)
	settle(g, c, 100)
	c.Place(250, 290)

	c.SetHealth(0)
	st := c.Advance(g, Intents{})
	if !st.Respawned {
		t.Fatal("expected a respawn at zero health")
	}
	if st.X != st.SpawnX || st.Y != st.SpawnY {
		t.Errorf("position = (%f, %f), expected spawn (%f, %f)", st.X, st.Y, st.SpawnX, st.SpawnY)
	}
	if !approx(st.Health, phys.RegenStep) {
		t.Errorf("Health = %f, expected only one regen step", st.Health)
	}

	st = c.Advance(g, Intents{})
	if st.Respawned {
		t.Error("player should not respawn again once health is positive")
	}
	if !approx(st.Health, 2*phys.RegenStep) {
		t.Errorf("Health = %f, expected %f", st.Health, 2*phys.RegenStep)
	}
}

func TestRegenCapsAtMax(t *testing.T) {
	g := floorGrid(t)
	c := NewController(100, 290, DefaultPhysics())
	c.SetHealth(99.99)

	if st := c.Advance(g, Intents{}); st.Health != 100 {
		t.Errorf("Health = %f, expected cap at 100", st.Health)
	}
	c.SetHealth(250)
	if c.Health() != 100 {
		t.Errorf("SetHealth should clamp, got %f", c.Health())
	}
}

func TestReload(t *testing.T) {
	g := floorGrid(t)
	c := NewController(100, 290, DefaultPhysics())

	if !c.TryFire(100) {
		t.Fatal("fresh gun should fire")
	}
	if c.TryFire(100) {
		t.Fatal("gun fired while reloading")
	}
	settle(g, c, 99)
	if c.Reload() != 1 {
		t.Fatalf("Reload() = %d after 99 ticks, expected 1", c.Reload())
	}
	settle(g, c, 1)
	if !c.TryFire(100) {
		t.Error("gun should be ready after the cooldown")
	}
}

func TestClampToWorld(t *testing.T) {
	g, _ := world.NewGrid(10, 10)
	phys := DefaultPhysics()
	c := NewController(20, -1000, phys)

	for i := 0; i < 20; i++ {
		c.Advance(g, Intents{MoveLeft: true})
	}
	if x, _ := c.Position(); x != 0 {
		t.Errorf("X = %f, expected clamp at 0", x)
	}

	for i := 0; i < 200; i++ {
		c.Advance(g, Intents{MoveRight: true})
	}
	if x, _ := c.Position(); x != 400-phys.Size {
		t.Errorf("X = %f, expected clamp at %f", x, 400-phys.Size)
	}
}

func TestPhysicsValidate(t *testing.T) {
	if err := DefaultPhysics().Validate(); err != nil {
		t.Fatalf("default physics invalid: %v", err)
	}
	p := DefaultPhysics()
	p.Size = 50
	if p.Validate() == nil {
		t.Error("a box larger than a tile should be rejected")
	}
	p = DefaultPhysics()
	p.Swimming.MaxFallSpeed = 40
	if p.Validate() == nil {
		t.Error("falling a full tile per tick should be rejected")
	}
}
