package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/metrics"
	"github.com/vovakirdan/paintball-slug/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagMetricsAddr     string
	flagServeDifficulty string
	flagIdleTimeout     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the main menu.
The save record and run history are per-server (all users share them).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slug/host_key

Examples:
  slug serve                           # Listen on :23234 with auto-generated key
  slug serve --ssh :2222               # Listen on port 2222
  slug serve --metrics :9090           # Also expose Prometheus metrics
  slug serve --db ./slug.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus metrics address (host:port), disabled when empty")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "normal", "Difficulty preselected in the menu")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	engineCfg, catalog, err := loadEngine()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		DBPath:         flagDBPath,
		MetricsAddress: flagMetricsAddr,
		Difficulty:     config.ParsePreset(flagServeDifficulty),
		TickRate:       flagFPS,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, tui.Services{
		Levels:   catalog,
		Engine:   engineCfg,
		Recorder: metrics.New(),
		Logger:   logger.WithPrefix("slug-ssh"),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting slug SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
