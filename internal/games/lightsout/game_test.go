package lightsout

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lightsout/internal/config"
	"github.com/vovakirdan/lightsout/internal/core"
	"github.com/vovakirdan/lightsout/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(VariantClassic, config.DefaultLightsOutConfig())
	g.Reset(testRuntime(seed))
	return g
}

// clickFrame returns an input frame clicking the center of cell c.
func clickFrame(g *Game, c Coord) core.InputFrame {
	in := core.NewInputFrame()
	x, y := g.Layout().CellRect(c.Row, c.Col).Center()
	in.Click(x, y)
	return in
}

func actionFrame(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func hasEvent(res core.StepResult, kind core.EventKind) (core.Event, bool) {
	for _, e := range res.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return core.Event{}, false
}

// solveGame presses an optimal solution and returns the final step result.
func solveGame(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	presses, err := Solve(g.Grid())
	if err != nil {
		t.Fatalf("generated puzzle not solvable: %v", err)
	}
	var res core.StepResult
	for _, c := range presses {
		res = g.Step(clickFrame(g, c))
	}
	return res
}

func TestResetDealsPuzzle(t *testing.T) {
	g := newTestGame(t, 42)

	if g.Solved() {
		t.Fatal("new puzzle should have lights on")
	}
	if g.Moves() != 0 || g.GamesWon() != 0 || g.Level() != 0 {
		t.Errorf("fresh session: moves=%d won=%d level=%d, want all 0", g.Moves(), g.GamesWon(), g.Level())
	}
	if n := len(g.Scramble()); n < 5 {
		t.Errorf("first puzzle scramble = %d presses, want at least 5", n)
	}
	if g.Par() < 1 || g.Par() > len(g.Scramble()) {
		t.Errorf("par = %d, want within 1..%d", g.Par(), len(g.Scramble()))
	}
	if g.Cursor() != (Coord{Row: 2, Col: 2}) {
		t.Errorf("cursor = %v, want center", g.Cursor())
	}
}

func TestReplayScrambleWins(t *testing.T) {
	g := newTestGame(t, 7)
	scramble := g.Scramble()

	won := false
	for _, c := range scramble {
		res := g.Step(clickFrame(g, c))
		if _, ok := hasEvent(res, core.EventSolved); ok {
			won = true
			break
		}
	}

	if !won {
		t.Fatal("replaying the scramble should solve the puzzle")
	}
	if g.Moves() > len(scramble) {
		t.Errorf("won in %d moves, scramble had %d", g.Moves(), len(scramble))
	}
	if g.GamesWon() != 1 {
		t.Errorf("GamesWon = %d, want 1", g.GamesWon())
	}
}

func TestWinEvent(t *testing.T) {
	g := newTestGame(t, 11)
	par := g.Par()
	scramble := len(g.Scramble())

	res := solveGame(t, g)

	e, ok := hasEvent(res, core.EventSolved)
	if !ok {
		t.Fatal("expected a Solved event on the winning press")
	}
	if e.Moves != par || e.Par != par || e.Scramble != scramble || e.Level != 0 {
		t.Errorf("event = %+v, want moves=par=%d scramble=%d level=0", e, par, scramble)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}
}

func TestWinningPressCountsAsMove(t *testing.T) {
	g := newTestGame(t, 29)
	presses, err := Solve(g.Grid())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	last := presses[len(presses)-1]
	for _, c := range presses[:len(presses)-1] {
		g.Step(clickFrame(g, c))
	}
	if g.Solved() || g.Moves() != len(presses)-1 {
		t.Fatalf("before the last press: solved=%v moves=%d", g.Solved(), g.Moves())
	}

	res := g.Step(clickFrame(g, last))
	e, ok := hasEvent(res, core.EventSolved)
	if !ok {
		t.Fatal("last press should win")
	}
	if g.Moves() != len(presses) || e.Moves != len(presses) {
		t.Errorf("moves = %d (event %d), want %d including the winning press", g.Moves(), e.Moves, len(presses))
	}
}

func TestDelayedRestartRaisesDifficulty(t *testing.T) {
	g := newTestGame(t, 3)
	solveGame(t, g)

	if !g.Solved() || !g.RestartPending() {
		t.Fatal("board should stay solved while the restart is pending")
	}

	// 1500ms at 60 ticks/s is 90 ticks.
	empty := core.NewInputFrame()
	for i := 0; i < 89; i++ {
		g.Step(empty)
		if !g.Solved() {
			t.Fatalf("new puzzle appeared after %d ticks, want 90", i+1)
		}
	}

	res := g.Step(empty)
	if _, ok := hasEvent(res, core.EventNewPuzzle); !ok {
		t.Error("expected a NewPuzzle event when the delay expires")
	}
	if g.Solved() || g.RestartPending() {
		t.Fatal("a new puzzle should be in play after the delay")
	}
	if g.Level() != 1 || g.Moves() != 0 || g.GamesWon() != 1 {
		t.Errorf("after restart: level=%d moves=%d won=%d, want 1/0/1", g.Level(), g.Moves(), g.GamesWon())
	}
	if n := len(g.Scramble()); n < 6 {
		t.Errorf("second puzzle scramble = %d presses, want at least 6", n)
	}
}

func TestNoDelayRestartsImmediately(t *testing.T) {
	cfg := config.DefaultLightsOutConfig()
	cfg.Timing.RestartDelayMS = 0
	g := NewWithConfig(VariantClassic, cfg)
	g.Reset(testRuntime(5))

	res := solveGame(t, g)

	if _, ok := hasEvent(res, core.EventSolved); !ok {
		t.Error("expected Solved event")
	}
	if _, ok := hasEvent(res, core.EventNewPuzzle); !ok {
		t.Error("expected NewPuzzle event on the same tick")
	}
	if g.Solved() {
		t.Error("a new puzzle should be dealt straight away")
	}
}

func TestPressOnSolvedBoardHasNoEffect(t *testing.T) {
	g := newTestGame(t, 21)
	solveGame(t, g)
	moves := g.Moves()

	for _, c := range []Coord{{0, 0}, {2, 2}, {4, 4}} {
		g.Step(clickFrame(g, c))
		g.Step(actionFrame(core.ActionToggle))
	}

	if !g.Solved() {
		t.Error("presses on a solved board must not light anything")
	}
	if g.Moves() != moves {
		t.Errorf("moves changed from %d to %d on a solved board", moves, g.Moves())
	}

	// Same rule applies to the press primitive itself.
	g.press(Coord{Row: 1, Col: 1})
	if !g.Solved() || g.Moves() != moves {
		t.Error("press on a solved board should be ignored")
	}
}

func TestWinDeclaredIffAllOff(t *testing.T) {
	g := newTestGame(t, 77)
	rng := rand.New(rand.NewSource(77))

	for step := 0; step < 2000; step++ {
		wasSolved := g.Solved()
		var in core.InputFrame
		if rng.Intn(4) == 0 {
			in = core.NewInputFrame() // idle tick, lets restarts happen
		} else {
			in = clickFrame(g, Coord{Row: rng.Intn(5), Col: rng.Intn(5)})
		}
		res := g.Step(in)

		_, won := hasEvent(res, core.EventSolved)
		_, dealt := hasEvent(res, core.EventNewPuzzle)
		if won != (!wasSolved && g.Solved()) {
			t.Fatalf("step %d: won=%v but solved before=%v after=%v", step, won, wasSolved, g.Solved())
		}
		if !dealt && !won && g.Solved() != wasSolved {
			t.Fatalf("step %d: solved state changed without an event", step)
		}
	}
}

func TestKeyboardPlay(t *testing.T) {
	g := newTestGame(t, 9)
	before := g.Grid()

	// Walk the cursor to the top-left corner; it clamps at the edges.
	for i := 0; i < 10; i++ {
		g.Step(actionFrame(core.ActionUp))
		g.Step(actionFrame(core.ActionLeft))
	}
	if g.Cursor() != (Coord{Row: 0, Col: 0}) {
		t.Fatalf("cursor = %v, want (0, 0)", g.Cursor())
	}

	for i := 0; i < 10; i++ {
		g.Step(actionFrame(core.ActionDown))
		g.Step(actionFrame(core.ActionRight))
	}
	if g.Cursor() != (Coord{Row: 4, Col: 4}) {
		t.Fatalf("cursor = %v, want (4, 4)", g.Cursor())
	}

	g.Step(actionFrame(core.ActionToggle))
	expected := before.Clone()
	expected.Toggle(4, 4)
	if !g.Grid().Equal(expected) && !g.Solved() {
		t.Errorf("toggle at cursor: board = %s, want %s", g.Grid(), expected)
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
}

func TestClickMovesCursorAndMissesGaps(t *testing.T) {
	g := newTestGame(t, 13)
	before := g.Grid()

	// Board gap at the left edge
	in := core.NewInputFrame()
	in.Click(g.Layout().Board.X, g.Layout().Board.Y+1)
	g.Step(in)
	if !g.Grid().Equal(before) || g.Moves() != 0 {
		t.Error("clicking a gap should not press anything")
	}

	g.Step(clickFrame(g, Coord{Row: 1, Col: 3}))
	if g.Cursor() != (Coord{Row: 1, Col: 3}) {
		t.Errorf("cursor = %v, want (1, 3)", g.Cursor())
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
}

func TestHintAction(t *testing.T) {
	g := newTestGame(t, 17)

	g.Step(actionFrame(core.ActionHint))
	if !g.hintShown {
		t.Fatal("hint should be shown")
	}
	if g.hintsUsed != 1 {
		t.Errorf("hintsUsed = %d, want 1", g.hintsUsed)
	}

	// Asking again for the same board does not count twice.
	g.Step(actionFrame(core.ActionHint))
	if g.hintsUsed != 1 {
		t.Errorf("hintsUsed = %d, want 1", g.hintsUsed)
	}

	par := g.Par()
	g.Step(clickFrame(g, g.hint))
	if g.hintShown {
		t.Error("pressing a cell should clear the hint")
	}
	if remaining := Par(g.Grid()); remaining != par-1 {
		t.Errorf("after the hinted press par = %d, want %d", remaining, par-1)
	}
}

func TestNewPuzzleAction(t *testing.T) {
	g := newTestGame(t, 19)
	g.Step(clickFrame(g, Coord{Row: 0, Col: 0}))

	res := g.Step(actionFrame(core.ActionNew))
	if _, ok := hasEvent(res, core.EventNewPuzzle); !ok {
		t.Error("expected NewPuzzle event")
	}
	if g.Moves() != 0 || g.GamesWon() != 0 || g.Level() != 0 {
		t.Error("skipping a puzzle should not count as a win")
	}
}

func TestPauseIgnoresInput(t *testing.T) {
	g := newTestGame(t, 23)
	before := g.Grid()

	res := g.Step(actionFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	g.Step(clickFrame(g, Coord{Row: 2, Col: 2}))
	if !g.Grid().Equal(before) {
		t.Error("presses while paused must be ignored")
	}

	res = g.Step(actionFrame(core.ActionPause))
	if res.State.Paused {
		t.Error("game should resume")
	}
}

func TestResizeKeepsPuzzle(t *testing.T) {
	g := newTestGame(t, 29)
	g.Step(clickFrame(g, Coord{Row: 1, Col: 1}))
	before := g.Snapshot()

	g.Resize(120, 40)
	after := g.Snapshot()
	if after.Board != before.Board || after.Moves != before.Moves {
		t.Error("resizing must not change the puzzle")
	}

	g.Resize(10, 5)
	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("a tiny screen should pause the game")
	}
	g.Step(actionFrame(core.ActionToggle))
	if g.Moves() != before.Moves {
		t.Error("input on a too-small screen must be ignored")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 500; i++ {
			g.Step(clickFrame(g, Coord{Row: rng.Intn(5), Col: rng.Intn(5)}))
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestCustomVariantUsesConfigBoard(t *testing.T) {
	cfg := config.DefaultLightsOutConfig()
	cfg.Board.Rows, cfg.Board.Cols = 4, 6
	g := NewWithConfig(VariantCustom, cfg)
	g.Reset(testRuntime(1))

	grid := g.Grid()
	if grid.Rows() != 4 || grid.Cols() != 6 {
		t.Errorf("custom board = %dx%d, want 4x6", grid.Rows(), grid.Cols())
	}

	// Built-in variants ignore the configured size.
	g = NewWithConfig(VariantMini, cfg)
	g.Reset(testRuntime(1))
	if g.Grid().Rows() != 3 {
		t.Errorf("mini board has %d rows, want 3", g.Grid().Rows())
	}
}

func TestInvalidConfiguredSizeFallsBack(t *testing.T) {
	cfg := config.DefaultLightsOutConfig()
	cfg.Board.Rows = 0
	g := NewWithConfig(VariantCustom, cfg)
	g.Reset(testRuntime(1))

	if g.ConfigError() == nil {
		t.Error("expected a config error for a zero-row board")
	}
	if g.Grid().Rows() != 5 || g.Grid().Cols() != 5 {
		t.Error("invalid board size should fall back to 5x5")
	}
}

// useConfigFile points newly reset games at a YAML file for the test.
func useConfigFile(t *testing.T, yaml, preset string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lightsout.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	SetDifficultyPreset(preset)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

const fixedLevelYAML = `
timing:
  restart_delay_ms: 0
difficulty:
  enabled: false
  initial_level: 3
`

func TestConfigFileDifficultySection(t *testing.T) {
	useConfigFile(t, fixedLevelYAML, "")

	g := New(VariantClassic)
	g.Reset(testRuntime(17))

	if err := g.ConfigError(); err != nil {
		t.Fatalf("config error: %v", err)
	}
	if g.cfg.Difficulty.Enabled || g.cfg.Difficulty.InitialLevel != 3 {
		t.Fatalf("difficulty = %+v, want file values {Enabled:false InitialLevel:3}", g.cfg.Difficulty)
	}
	if g.Level() != 3 {
		t.Errorf("level = %d, want 3", g.Level())
	}

	solveGame(t, g)
	if g.GamesWon() != 1 {
		t.Fatalf("won = %d, want 1", g.GamesWon())
	}
	if g.Level() != 3 {
		t.Errorf("level after a win = %d, want 3 with progression disabled", g.Level())
	}
}

func TestPresetOverridesConfigFile(t *testing.T) {
	useConfigFile(t, fixedLevelYAML, "hard")

	g := New(VariantClassic)
	g.Reset(testRuntime(17))

	if !g.cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if g.Level() != 5 {
		t.Errorf("level = %d, want 5 for the hard preset", g.Level())
	}
}

func TestUnknownPresetKeepsConfigFile(t *testing.T) {
	useConfigFile(t, fixedLevelYAML, "brutal")

	g := New(VariantClassic)
	g.Reset(testRuntime(17))

	if g.ConfigError() == nil {
		t.Error("unknown preset should be reported")
	}
	if g.Level() != 3 {
		t.Errorf("level = %d, want the file's 3", g.Level())
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q is not registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), v.Title)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 31)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := screen.Row(0); !strings.Contains(got, "L I G H T S   O U T") {
		t.Errorf("title row = %q", got)
	}

	grid := g.Grid()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			x, y := g.Layout().CellRect(i, j).Center()
			cell := screen.GetCell(x, y)
			if grid.IsOn(i, j) {
				if cell.Color != core.ColorPink && cell.Color != core.ColorHotPink {
					t.Errorf("lit cell (%d, %d) drawn with color %d", i, j, cell.Color)
				}
			} else if cell.Color != core.ColorPurple && cell.Color != core.ColorLavender {
				t.Errorf("unlit cell (%d, %d) drawn with color %d", i, j, cell.Color)
			}
		}
	}

	// Cursor box sits on the gap around the center cell.
	r := g.Layout().CellRect(2, 2)
	if screen.Get(r.X-1, r.Y-1) != '┌' {
		t.Errorf("expected cursor corner at (%d, %d), got %q", r.X-1, r.Y-1, screen.Get(r.X-1, r.Y-1))
	}
}

func TestRenderBanners(t *testing.T) {
	g := newTestGame(t, 37)
	screen := core.NewScreen(80, 24)

	solveGame(t, g)
	g.Render(screen)
	if !screenContains(screen, "LIGHTS OUT!") {
		t.Error("win banner should be shown while the restart is pending")
	}

	g = newTestGame(t, 37)
	g.Step(actionFrame(core.ActionPause))
	g.Render(screen)
	if !screenContains(screen, "PAUSED") {
		t.Error("pause banner missing")
	}

	g.Resize(30, 6)
	small := core.NewScreen(30, 6)
	g.Render(small)
	if !screenContains(small, "Window") {
		t.Error("too-small message missing")
	}
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
