package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightsout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Lights Out SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the variant menu.
Scores are stored per server (all users share the same scoreboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lightsout/host_key

Examples:
  lightsout serve                           # Listen on :23234
  lightsout serve --ssh :2222               # Listen on port 2222
  lightsout serve --host-key ./my_host_key  # Use specific host key
  lightsout serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("lightsout-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("connect with ssh", "address", server.Addr())
	return server.ListenAndServe()
}
