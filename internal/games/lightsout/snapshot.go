package lightsout

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Level    int
	Moves    int
	GamesWon int
	Par      int
	Lit      int
	Board    string // Grid.String() form
	Cursor   Coord
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.Solved():
		state = StateSolved
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		Level:    g.level,
		Moves:    g.moves,
		GamesWon: g.gamesWon,
		Par:      g.par,
		Lit:      g.grid.LitCount(),
		Board:    g.grid.String(),
		Cursor:   g.cursor,
		State:    state,
	}
}
