package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render ticks per second (default 60); simulation steps are fixed independently
	Seed     int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies a fire-and-forget game event emitted to the platform.
// Events are consumed by rendering/audio collaborators and never affect the
// simulation.
type EventType int

const (
	EventGo          EventType = iota // Ready phase ended, play begins
	EventLanded                       // Player bounced off a platform
	EventPickup                       // Power-up collected; Value carries the kind
	EventShieldUsed                   // Shield charge consumed on a fall
	EventDeath                        // Round ended; Value carries the final score
	EventScore                        // Score changed; Value carries the new total
)

// Event is a single game event with an optional integer payload.
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Advance() after each platform frame.
// Contains the updated game state and any events that occurred during the
// fixed steps drained within the frame.
type StepResult struct {
	State  GameState
	Events []Event
}
