package core

// Game is the contract between a simulation and the platform that drives it.
// Games contain pure logic with no terminal or window dependencies.
// The platform handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier, used for file names and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
