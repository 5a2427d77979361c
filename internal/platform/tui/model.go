package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lightsout/internal/core"
	"github.com/vovakirdan/lightsout/internal/registry"
	"github.com/vovakirdan/lightsout/internal/storage"
)

// Model is the Bubble Tea model that runs one game. It is used directly
// for local play and embedded in SessionModel for SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	tickLoop   uint64
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // running inside a SessionModel; Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a model for game. A nil store disables persistence and
// a nil logger discards warnings.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		sessionID:  uuid.NewString(),
		tickLoop:   newTickLoop(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithSessionID tags saved results with id instead of a fresh UUID.
func (m Model) WithSessionID(id string) Model {
	m.sessionID = id
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate, m.tickLoop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.finish()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. Games that can relayout keep
// their puzzle; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.recordEvent(e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickLoop)
}

// recordEvent persists a solved puzzle. Persistence is best effort.
func (m *Model) recordEvent(e core.Event) {
	if e.Kind != core.EventSolved || m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.PuzzleResult{
		SessionID:  m.sessionID,
		VariantID:  m.game.ID(),
		Rows:       e.Rows,
		Cols:       e.Cols,
		Level:      e.Level,
		Moves:      e.Moves,
		Par:        e.Par,
		Scramble:   e.Scramble,
		Hints:      e.Hints,
		DurationMS: int64(e.Ticks) * 1000 / int64(m.config.TickRate),
	})
	if err != nil {
		m.warn("could not save puzzle result", "error", err)
	}
}

// finish records the session score (puzzles solved) once.
func (m *Model) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.game.State().Score
	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.warn("could not save score", "error", err)
	}
}

func (m *Model) warn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".lightsout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// SessionID returns the ID stored with this model's puzzle results.
func (m Model) SessionID() string {
	return m.sessionID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the player quits or backs
// out. Mouse reporting is enabled so cells can be clicked.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
