package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hextiles/internal/multiplayer"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// RoomLink attaches a board model to a shared room. Moves go to the
// coordinator and the board follows the room's results.
type RoomLink struct {
	Coordinator *multiplayer.Coordinator
	Session     *multiplayer.ChannelSession
	Code        string
	Seq         uint64 // last result already on the board
}

// roomEventMsg wraps a coordinator event for Bubble Tea.
type roomEventMsg struct {
	event multiplayer.SessionEvent
}

// waitForEvent returns a command that waits for the next room event.
func (m Model) waitForEvent() tea.Cmd {
	if m.opts.Room == nil {
		return nil
	}
	session := m.opts.Room.Session
	return func() tea.Msg {
		evt, err := session.Next(context.Background())
		if err != nil {
			return nil
		}
		return roomEventMsg{event: evt}
	}
}

// sendMove hands a move to the room instead of applying it locally.
func (m Model) sendMove(e tile.Element) (Model, tea.Cmd) {
	m.opts.Room.Coordinator.Send(multiplayer.ApplyMsg{
		SessionID: m.opts.Room.Session.ID(),
		Coord:     m.cursor,
		Element:   e,
		Policy:    m.opts.Policy,
	})
	return m, nil
}

func (m Model) handleRoomEvent(evt multiplayer.SessionEvent) (Model, tea.Cmd) {
	if m.opts.Room == nil {
		return m, nil
	}

	switch evt := evt.(type) {
	case multiplayer.BoardChangedEvent:
		if evt.Seq != m.roomSeq+1 {
			return m.resync()
		}
		if err := m.board.Replay(evt.Result); err != nil {
			return m.resync()
		}
		m.roomSeq = evt.Seq
		res := evt.Result
		text := fmt.Sprintf("%s: %s at %v, %d changed", evt.By, res.Element, res.Origin, res.ChangedCount())
		if res.Cascaded() {
			text = fmt.Sprintf("%s: %s! %d changed", evt.By, res.Element.CascadeName(), res.ChangedCount())
		}
		return m.setStatus(text)

	case multiplayer.MemberJoinedEvent:
		return m.setStatus(fmt.Sprintf("%s joined (%d here)", evt.Name, evt.Members))

	case multiplayer.MemberLeftEvent:
		return m.setStatus(fmt.Sprintf("%s left (%d here)", evt.Name, evt.Members))

	case multiplayer.RoomErrorEvent:
		return m.setStatus(evt.Message)

	case multiplayer.RoomClosedEvent:
		m.opts.Room.Session.Close()
		m.opts.Room = nil
		return m.setStatus("room closed, playing alone")
	}
	return m, nil
}

// resync replaces the board with the room's current snapshot.
func (m Model) resync() (Model, tea.Cmd) {
	b, seq, ok := m.opts.Room.Coordinator.Snapshot(m.opts.Room.Code)
	if !ok {
		m.opts.Room = nil
		return m.setStatus("room is gone, playing alone")
	}
	m.board = b
	m.roomSeq = seq
	m.cursor = m.board.Clamp(m.cursor)
	return m.setStatus("resynchronized with room")
}

// leaveRoom detaches the model from its room.
func (m Model) leaveRoom() Model {
	if m.opts.Room == nil {
		return m
	}
	m.opts.Room.Coordinator.Send(multiplayer.LeaveRoomMsg{SessionID: m.opts.Room.Session.ID()})
	m.opts.Room.Session.Close()
	m.opts.Room = nil
	return m
}

// Room returns the room code, or "" when playing alone.
func (m Model) Room() string {
	if m.opts.Room == nil {
		return ""
	}
	return m.opts.Room.Code
}
