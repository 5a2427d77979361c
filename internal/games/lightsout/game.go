package lightsout

import (
	"fmt"

	"github.com/vovakirdan/lightsout/internal/config"
	"github.com/vovakirdan/lightsout/internal/core"
	"github.com/vovakirdan/lightsout/internal/registry"
)

// Package-level variables for config, set from CLI flags before creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by newly reset games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by newly reset games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	for _, v := range Variants() {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements Lights Out as a registry.Game.
type Game struct {
	variant    Variant
	cfg        config.LightsOutConfig
	fixedCfg   bool // cfg was injected and must not be reloaded
	configErr  error
	difficulty *config.DifficultyManager
	gen        *Generator
	tick       uint64

	rows     int
	cols     int
	grid     *Grid
	scramble []Coord
	par      int
	level    int
	cursor   Coord

	moves       int
	gamesWon    int
	hintsUsed   int
	puzzleTicks int

	hint      Coord
	hintShown bool

	restartTicks int // Countdown to the next puzzle after a win; 0 = none pending
	restartDelay int

	// Screen dimensions
	screenW  int
	screenH  int
	layout   Layout
	tooSmall bool

	paused bool
	events []core.Event
}

// New creates a game for the given variant. Configuration is loaded on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that uses cfg instead of loading a config file.
func NewWithConfig(v Variant, cfg config.LightsOutConfig) *Game {
	return &Game{variant: v, cfg: cfg, fixedCfg: true}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Reset starts a new session: wins and level go back to the start and a
// fresh puzzle is dealt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()

	g.rows, g.cols = g.variant.Rows, g.variant.Cols
	if g.rows == 0 || g.cols == 0 {
		g.rows, g.cols = g.cfg.Board.Rows, g.cfg.Board.Cols
	}
	if g.rows < 1 || g.rows > MaxGridSize || g.cols < 1 || g.cols > MaxGridSize {
		g.configErr = fmt.Errorf("%w: %dx%d, falling back to 5x5", ErrInvalidSize, g.rows, g.cols)
		g.rows, g.cols = VariantClassic.Rows, VariantClassic.Cols
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Puzzle)
	g.gen = NewGenerator(cfg.Seed)
	g.restartDelay = cfg.TicksFor(g.cfg.Timing.RestartDelayMS)
	g.tick = 0
	g.gamesWon = 0
	g.paused = false
	g.events = nil

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newPuzzle()
}

// loadConfig resolves the configuration for this session.
func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}

	cfg, err := config.Load(configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultLightsOutConfig()
	}

	// Without a preset the file's difficulty section stands as written.
	if difficultyPreset != "" {
		preset, err := config.ParsePreset(difficultyPreset)
		if err != nil {
			g.configErr = err
		} else {
			config.ApplyPreset(&cfg, preset)
		}
	}
	g.cfg = cfg
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	layout, ok := ComputeLayout(w, h, g.rows, g.cols, g.cfg.Display.MaxCellWidth, g.cfg.Display.CompactWidth)
	g.layout = layout
	g.tooSmall = !ok
}

// newPuzzle deals a puzzle for the current number of wins.
func (g *Game) newPuzzle() {
	g.level = g.difficulty.Level(g.gamesWon)
	presses := g.difficulty.ScrambleMoves(g.gamesWon)

	p, err := g.gen.Generate(g.rows, g.cols, presses)
	if err != nil {
		// Reset has already checked the board size.
		panic(err)
	}

	g.grid = p.Grid
	g.scramble = p.Scramble
	g.par = Par(g.grid)
	g.moves = 0
	g.puzzleTicks = 0
	g.hintsUsed = 0
	g.hintShown = false
	g.restartTicks = 0
	g.cursor = Coord{Row: g.rows / 2, Col: g.cols / 2}

	g.events = append(g.events, core.Event{
		Kind:     core.EventNewPuzzle,
		Rows:     g.rows,
		Cols:     g.cols,
		Level:    g.level,
		Par:      g.par,
		Scramble: len(g.scramble),
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle window size check
	if g.tooSmall {
		return g.result()
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// Solved board waits out the restart delay; input has no effect.
	if g.restartTicks > 0 {
		g.restartTicks--
		if g.restartTicks == 0 {
			g.newPuzzle()
		}
		return g.result()
	}

	if in.Has(core.ActionNew) {
		g.newPuzzle()
		return g.result()
	}

	g.moveCursor(in)

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionToggle) {
		g.press(g.cursor)
	}
	for _, p := range in.Clicks {
		if c, ok := g.layout.CellAt(p.X, p.Y); ok {
			g.cursor = c
			g.press(c)
		}
	}

	if !g.grid.LightsOut() {
		g.puzzleTicks++
	}

	return g.result()
}

// moveCursor applies directional input, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.cols-1)
}

// press is a player move. It is ignored once the board is solved.
func (g *Game) press(c Coord) {
	if g.grid.LightsOut() {
		return
	}
	if !g.grid.Toggle(c.Row, c.Col) {
		return
	}
	g.moves++
	g.hintShown = false

	if g.grid.LightsOut() {
		g.win()
	}
}

// win records a solved puzzle and schedules the next one.
func (g *Game) win() {
	g.gamesWon++
	g.events = append(g.events, core.Event{
		Kind:     core.EventSolved,
		Rows:     g.rows,
		Cols:     g.cols,
		Level:    g.level,
		Moves:    g.moves,
		Par:      g.par,
		Scramble: len(g.scramble),
		Ticks:    g.puzzleTicks,
		Hints:    g.hintsUsed,
	})

	g.restartTicks = g.restartDelay
	if g.restartTicks == 0 {
		g.newPuzzle()
	}
}

// showHint marks a cell from a shortest solution of the current board.
func (g *Game) showHint() {
	c, ok := Hint(g.grid)
	if !ok {
		return
	}
	g.hint = c
	if !g.hintShown {
		g.hintsUsed++
	}
	g.hintShown = true
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state. There is no game over; the score
// is the number of puzzles solved this session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.gamesWon,
		Paused: g.paused || g.tooSmall,
	}
}

// Grid returns a copy of the current board.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// Scramble returns the presses that generated the current puzzle.
func (g *Game) Scramble() []Coord {
	return append([]Coord(nil), g.scramble...)
}

// Moves returns the number of presses made on the current puzzle. The
// winning press is included, so a puzzle solved at par reports Moves equal
// to Par. A count of only the presses before the win would be one lower.
func (g *Game) Moves() int {
	return g.moves
}

// GamesWon returns the number of puzzles solved this session.
func (g *Game) GamesWon() int {
	return g.gamesWon
}

// Level returns the difficulty level of the current puzzle.
func (g *Game) Level() int {
	return g.level
}

// Par returns the minimal number of presses for the current puzzle.
func (g *Game) Par() int {
	return g.par
}

// Cursor returns the cell under the keyboard cursor.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// Solved reports whether the current board has every light off.
func (g *Game) Solved() bool {
	return g.grid != nil && g.grid.LightsOut()
}

// RestartPending reports whether the next puzzle is waiting on the delay.
func (g *Game) RestartPending() bool {
	return g.restartTicks > 0
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}
