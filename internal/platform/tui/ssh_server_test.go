package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightsout/internal/core"
	_ "github.com/vovakirdan/lightsout/internal/games/lightsout"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionModelFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, log.New(io.Discard), cfg, "tester")

	if m.SessionID() == "" {
		t.Fatal("session should have an ID")
	}

	// Menu -> game
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected variant")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if m.gameModel.SessionID() != m.SessionID() {
		t.Error("game results should carry the session ID")
	}
	if m.View() == "" {
		t.Error("game view should not be empty")
	}

	// Game -> menu
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("esc should return to the menu")
	}

	// Menu -> scoreboard -> menu
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.quitting {
		t.Fatal("closing the scoreboard must not end the session")
	}

	// Quit
	m, cmd = sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionModelTracksResize(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(nil, log.New(io.Discard), cfg, "tester")

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel == nil {
		t.Fatal("expected a running game")
	}
	if w, h := m.gameModel.screen.Width(), m.gameModel.screen.Height(); w != 100 || h != 30 {
		t.Errorf("game screen = %dx%d, want 100x30", w, h)
	}
}

func TestSSHServerConfigDefaults(t *testing.T) {
	cfg := SSHServerConfig{Address: ":2222", TickRate: 30}.withDefaults()

	if cfg.Address != ":2222" || cfg.TickRate != 30 {
		t.Errorf("set fields changed: %+v", cfg)
	}
	if cfg.DBPath != "~/.lightsout/scores.db" {
		t.Errorf("DBPath = %q, want the default", cfg.DBPath)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, want 30m", cfg.IdleTimeout)
	}

	if got := (SSHServerConfig{}).withDefaults(); got != DefaultSSHServerConfig() {
		t.Errorf("empty config = %+v, want %+v", got, DefaultSSHServerConfig())
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "keys", "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
	}

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("scores database should be open")
	}
	if srv.config.TickRate != 60 {
		t.Errorf("TickRate = %d, want default 60", srv.config.TickRate)
	}
	_ = srv.Shutdown()
}
