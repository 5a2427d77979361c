package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the runtime config used when the terminal size is
// unknown. A zero seed is replaced with the current time by the platform.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in milliseconds to a tick count at this config's rate.
// Always returns at least one tick for a positive duration.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Puzzles solved this session
	Paused bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	// EventSolved fires on the tick a puzzle is completed.
	EventSolved
	// EventNewPuzzle fires when a fresh puzzle has been dealt.
	EventNewPuzzle
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSolved:
		return "Solved"
	case EventNewPuzzle:
		return "NewPuzzle"
	default:
		return "None"
	}
}

// Event carries the details of a game event to the platform.
type Event struct {
	Kind     EventKind
	Rows     int // Board size
	Cols     int
	Level    int // Difficulty level the puzzle was generated at
	Moves    int // Player moves spent on the puzzle
	Par      int // Optimal number of moves, -1 if unknown
	Scramble int // Number of random toggles used to build the puzzle
	Ticks    int // Ticks spent on the puzzle
	Hints    int // Hints requested on the puzzle
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
