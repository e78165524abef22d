package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/storage"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// maxHistory bounds the undo stack.
const maxHistory = 100

// Options configures a board Model.
type Options struct {
	Name    string         // display name, also used when saving
	BoardID string         // storage ID when the board was loaded or saved
	Store   *storage.Store // nil disables saving
	Logger  *log.Logger    // nil disables logging
	Policy  board.Policy
	Config  core.RuntimeConfig
	Room    *RoomLink // nil when playing alone
}

// Model is the Bubble Tea model for playing elements on a board.
type Model struct {
	board   *board.Board
	opts    Options
	cursor  hex.Coord
	history []board.Result
	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model

	roomSeq uint64

	status   string
	statusID int
	quitting bool
	back     bool
}

// NewModel creates a board model with the cursor at the board center.
func NewModel(b *board.Board, opts Options) Model {
	if opts.Name == "" {
		opts.Name = "untitled"
	}
	if opts.Config.ScreenW == 0 {
		opts.Config = core.DefaultConfig()
	}
	keys := DefaultKeyMap()
	m := Model{
		board:  b,
		opts:   opts,
		cursor: b.Center(),
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
	}
	if opts.Room != nil {
		m.roomSeq = opts.Room.Seq
		m.status = "room " + opts.Room.Code
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("hextiles: "+m.opts.Name), m.waitForEvent())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			m = m.leaveRoom()
			m.back = true
			return m, nil
		}
		return m.Act(m.mapper.MapKey(msg))

	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case roomEventMsg:
		var cmd tea.Cmd
		m, cmd = m.handleRoomEvent(msg.event)
		return m, tea.Batch(cmd, m.waitForEvent())

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

// Act performs one board action.
func (m Model) Act(a core.Action) (Model, tea.Cmd) {
	switch {
	case a == core.ActionQuit:
		m = m.leaveRoom()
		m.quitting = true
		return m, tea.Quit

	case a.IsMove():
		m.cursor = m.board.Move(m.cursor, orthoFor(a))
		return m, nil

	case a.IsElement():
		return m.apply(elementFor(a))
	}

	switch a {
	case core.ActionToggleChain:
		m.opts.Policy.Chain = !m.opts.Policy.Chain
		state := "off"
		if m.opts.Policy.Chain {
			state = "on"
		}
		return m.setStatus("chained cascades " + state)

	case core.ActionUndo:
		if m.opts.Room != nil {
			return m.setStatus("undo is off in a shared room")
		}
		if len(m.history) == 0 {
			return m.setStatus("nothing to undo")
		}
		last := m.history[len(m.history)-1]
		if err := m.board.Revert(last); err != nil {
			return m.setStatus("undo failed: " + err.Error())
		}
		m.history = m.history[:len(m.history)-1]
		return m.setStatus("undid " + last.Element.String())

	case core.ActionSave:
		return m.save()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) apply(e tile.Element) (Model, tea.Cmd) {
	if m.opts.Room != nil {
		return m.sendMove(e)
	}
	res, err := m.board.Apply(m.cursor, e, m.opts.Policy)
	if err != nil {
		return m.setStatus(err.Error())
	}

	m.history = append(m.history, res)
	if len(m.history) > maxHistory {
		m.history = m.history[1:]
	}

	if m.opts.Store != nil && m.opts.BoardID != "" {
		if _, err := m.opts.Store.RecordMove(m.opts.BoardID, res); err != nil {
			m.logWarn("could not record move", "board", m.opts.BoardID, "error", err)
		}
	}

	msg := fmt.Sprintf("%s at %v: %d changed", e, m.cursor, res.ChangedCount())
	if res.Cascaded() {
		msg = fmt.Sprintf("%s! %s spread over %d cells, %d changed",
			e.CascadeName(), e, len(res.Changes), res.ChangedCount())
	}
	return m.setStatus(msg)
}

func (m Model) save() (Model, tea.Cmd) {
	if m.opts.Store == nil {
		return m.setStatus("saving is disabled")
	}
	if m.opts.BoardID == "" {
		id, err := m.opts.Store.SaveBoard(m.opts.Name, m.board)
		if err != nil {
			m.logWarn("could not save board", "error", err)
			return m.setStatus("save failed")
		}
		m.opts.BoardID = id
		m.logInfo("board saved", "board", id, "name", m.opts.Name)
		return m.setStatus("saved as " + shortID(id))
	}
	if err := m.opts.Store.UpdateBoard(m.opts.BoardID, m.board); err != nil {
		m.logWarn("could not update board", "board", m.opts.BoardID, "error", err)
		return m.setStatus("save failed")
	}
	return m.setStatus("saved " + shortID(m.opts.BoardID))
}

func (m Model) setStatus(text string) (Model, tea.Cmd) {
	m.status = text
	m.statusID++
	return m, expireStatus(m.statusID, statusTimeout)
}

func (m Model) logInfo(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, kv...)
	}
}

func (m Model) logWarn(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, kv...)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := board.TextWidth(m.board.Params()) + 2
	h := m.board.Params().Height() + 4
	if !m.opts.Config.Fits(w, h) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
			w, h, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.opts.Name))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %v  radius %d  chain %v",
		m.board.Params(), max(m.opts.Policy.Radius, 1), m.opts.Policy.Chain)))
	if m.opts.Room != nil {
		sb.WriteString(statusStyle.Render("  room " + m.opts.Room.Code))
	}
	sb.WriteString("\n\n")
	sb.WriteString(RenderBoard(m.board, m.cursor))
	sb.WriteString("\n\n")

	s, _ := m.board.Get(m.cursor)
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%v %v", m.cursor, s)))
	if m.status != "" {
		sb.WriteString(dimStyle.Render("  " + m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

// Board returns the board being played.
func (m Model) Board() *board.Board { return m.board }

// Cursor returns the selected cell.
func (m Model) Cursor() hex.Coord { return m.cursor }

// Policy returns the current cascade policy.
func (m Model) Policy() board.Policy { return m.opts.Policy }

// BoardID returns the storage ID, or "" when the board was never saved.
func (m Model) BoardID() string { return m.opts.BoardID }

// Status returns the current status line.
func (m Model) Status() string { return m.status }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToBrowser returns true if user asked for the list of saved boards.
func (m Model) BackToBrowser() bool { return m.back }

func orthoFor(a core.Action) hex.OrthoDir {
	switch a {
	case core.ActionEast:
		return hex.East
	case core.ActionSouth:
		return hex.South
	case core.ActionWest:
		return hex.West
	default:
		return hex.North
	}
}

func elementFor(a core.Action) tile.Element {
	return tile.Elements()[a-core.ActionAir]
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
