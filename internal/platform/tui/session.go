package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store  *storage.Store
	Logger *log.Logger
	Policy board.Policy
	Config core.RuntimeConfig
	// NewBoard generates the board behind the browser's "new board" key.
	NewBoard func() (*board.Board, error)
}

// boardOptions returns the Options of a board screen opened in the session.
func (o SessionOptions) boardOptions(name, id string) Options {
	return Options{
		Name:    name,
		BoardID: id,
		Store:   o.Store,
		Logger:  o.Logger,
		Policy:  o.Policy,
		Config:  o.Config,
	}
}

// SessionModel manages the full session flow: board -> browser -> board.
// This is the top-level model used for SSH sessions and local play.
type SessionModel struct {
	opts      SessionOptions
	board     Model
	browser   BrowserModel
	inBrowser bool
	quitting  bool
	generated int
}

// NewSessionModel creates a session that starts on the given board screen.
func NewSessionModel(start Model, opts SessionOptions) SessionModel {
	if opts.Config.ScreenW == 0 {
		opts.Config = core.DefaultConfig()
	}
	return SessionModel{opts: opts, board: start}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.board.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
		next, _ := m.board.Update(msg)
		m.board = next.(Model)
		if !m.inBrowser {
			return m, nil
		}
	}

	if m.inBrowser {
		return m.updateBrowser(msg)
	}
	return m.updateBoard(msg)
}

// updateBoard handles updates when the board screen is active.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(Model)

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.BackToBrowser() {
		m.board.back = false
		m.browser = NewBrowserModel(m.opts.Store, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.inBrowser = true
		return m, m.browser.Init()
	}

	return m, cmd
}

// updateBrowser handles updates when the browser is active.
func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.browser.Update(msg)
	m.browser = next.(BrowserModel)

	switch {
	case m.browser.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.browser.IsGoingBack():
		m.inBrowser = false
		return m, nil

	case m.browser.WantsNew():
		m.browser.wantsNew = false
		if m.opts.NewBoard == nil {
			return m, nil
		}
		b, err := m.opts.NewBoard()
		if err != nil {
			m.browser.err = err
			return m, nil
		}
		m.generated++
		m.board = NewModel(b, m.opts.boardOptions(fmt.Sprintf("new board %d", m.generated), ""))
		m.inBrowser = false
		return m, m.board.Init()

	case m.browser.Selected() != nil:
		rec := *m.browser.Selected()
		m.browser.selected = nil
		b, _, err := m.opts.Store.LoadBoard(rec.ID)
		if err != nil {
			m.browser.err = err
			return m, nil
		}
		m.board = NewModel(b, m.opts.boardOptions(rec.Name, rec.ID))
		m.inBrowser = false
		return m, m.board.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inBrowser {
		return m.browser.View()
	}
	return m.board.View()
}

// Board returns the active board screen.
func (m SessionModel) Board() Model { return m.board }

// InBrowser reports whether the browser is showing.
func (m SessionModel) InBrowser() bool { return m.inBrowser }

// Run starts the Bubble Tea program with the given session.
func Run(m SessionModel) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
