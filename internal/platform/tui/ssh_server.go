package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/config"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/multiplayer"
	"github.com/vovakirdan/hextiles/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hextiles/host_key.
	HostKeyPath string

	// DBPath is the path to the boards database. Empty disables saving.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game shapes the board each session starts with.
	Game config.Config

	// Logger receives session events. Nil logs to stderr.
	Logger *log.Logger
}

// SSHServerConfigFrom builds a server config from the loaded configuration.
func SSHServerConfigFrom(cfg config.Config, logger *log.Logger) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.Server.Address(),
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: cfg.Server.IdleTimeout(),
		Game:        cfg,
		Logger:      logger,
	}
}

// SSHServer wraps a Wish SSH server serving one board session per
// connection. Sessions started with "host" or "join <code>" share a board
// through the room coordinator.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	rooms  *multiplayer.Coordinator
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hextiles-ssh",
		})
	}

	// Open storage
	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open boards database", "error", err)
			// Continue without storage
			store = nil
		}
	}

	rooms := multiplayer.NewCoordinator(multiplayer.DefaultCoordinatorConfig())
	rooms.SetLogger(logger.With("component", "rooms"))
	if store != nil {
		rooms.SetSaver(store)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		rooms:  rooms,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hextiles", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// newBoard generates a fresh board from a time-based seed.
func (s *SSHServer) newBoard() (*board.Board, error) {
	seed := uint64(time.Now().UnixNano())
	return s.config.Game.NewBoard(core.NewRNG(seed), int64(seed))
}

// teaHandler creates a Bubble Tea program for each SSH session.
//
// The SSH command picks the board:
//
//	(none)        a freshly generated board
//	host [id]     share a new board, or saved board id, in a new room
//	join <code>   join the room with the given code
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	opts := SessionOptions{
		Store:  s.store,
		Logger: s.logger.With("user", user),
		Policy: s.config.Game.Policy(),
		Config: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
		},
		NewBoard: s.newBoard,
	}

	start, err := s.startModel(sshSession, opts)
	if err != nil {
		s.logger.Warn("cannot start session", "user", user, "command", sshSession.Command(), "error", err)
		wish.Errorln(sshSession, err)
		return nil, nil
	}

	return NewSessionModel(start, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// startModel builds the first board screen for the session's command.
func (s *SSHServer) startModel(sshSession ssh.Session, opts SessionOptions) (Model, error) {
	user := sshSession.User()
	args := sshSession.Command()
	if len(args) == 0 {
		b, err := s.newBoard()
		if err != nil {
			return Model{}, fmt.Errorf("cannot generate board: %w", err)
		}
		return NewModel(b, opts.boardOptions(user+"'s board", "")), nil
	}

	session := multiplayer.NewChannelSession(multiplayer.SessionID(uuid.NewString()), 0)
	var (
		info multiplayer.RoomInfo
		name string
		err  error
	)
	switch {
	case args[0] == "host" && len(args) <= 2:
		var b *board.Board
		boardID := ""
		name = user + "'s room"
		if len(args) == 2 {
			if s.store == nil {
				return Model{}, errors.New("saved boards are not available on this server")
			}
			var rec storage.BoardRecord
			if b, rec, err = s.store.LoadBoard(args[1]); err != nil {
				return Model{}, err
			}
			boardID, name = rec.ID, rec.Name
		} else if b, err = s.newBoard(); err != nil {
			return Model{}, fmt.Errorf("cannot generate board: %w", err)
		}
		info, err = s.rooms.Host(session, user, b, boardID)

	case args[0] == "join" && len(args) == 2:
		info, err = s.rooms.Join(session, user, args[1])
		name = "room " + info.Code

	default:
		return Model{}, fmt.Errorf("unknown command %q: use host [id] or join <code>", args)
	}
	if err != nil {
		return Model{}, err
	}

	// Leave the room when the connection drops without a quit.
	go func() {
		select {
		case <-sshSession.Context().Done():
			s.rooms.Send(multiplayer.SessionDisconnectedMsg{SessionID: session.ID()})
			session.Close()
		case <-session.Done():
		}
	}()

	boardOpts := opts.boardOptions(name, info.BoardID)
	boardOpts.Room = &RoomLink{
		Coordinator: s.rooms,
		Session:     session,
		Code:        info.Code,
		Seq:         info.Seq,
	}
	return NewModel(info.Board, boardOpts), nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)
	s.rooms.Start()

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.rooms.Stop()
	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
