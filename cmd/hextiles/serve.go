package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextiles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hextiles SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a freshly generated board.
Saved boards are stored per-server (all users share the same list).

Host key handling:
  - If --host-key or server.host_key_path is set, uses that key file
  - Otherwise, auto-generates a key at ~/.hextiles/host_key

Examples:
  hextiles serve                           # Address from config (default 0.0.0.0:2323)
  hextiles serve --ssh :2222               # Listen on port 2222
  hextiles serve --host-key ./my_host_key  # Use specific host key
  hextiles serve --db ./boards.db          # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	appCfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg := tui.SSHServerConfigFrom(appCfg, logger)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting hextiles SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
