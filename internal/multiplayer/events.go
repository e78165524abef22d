package multiplayer

import (
	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// SessionEvent represents an event sent from the coordinator to a session.
type SessionEvent interface {
	sessionEvent()
}

// RoomErrorEvent is sent when a move from this session was rejected.
type RoomErrorEvent struct {
	Message string
}

func (RoomErrorEvent) sessionEvent() {}

// MemberJoinedEvent is sent to existing members when someone joins.
type MemberJoinedEvent struct {
	Code    string
	Name    string
	Members int
}

func (MemberJoinedEvent) sessionEvent() {}

// MemberLeftEvent is sent to the remaining members when someone leaves.
type MemberLeftEvent struct {
	Code    string
	Name    string
	Members int
}

func (MemberLeftEvent) sessionEvent() {}

// BoardChangedEvent carries one applied move to every member.
type BoardChangedEvent struct {
	Code   string
	Seq    uint64 // increases by one per move in the room
	By     string // name of the member who moved
	Result board.Result
}

func (BoardChangedEvent) sessionEvent() {}

// RoomClosedEvent is sent when the coordinator shuts down.
type RoomClosedEvent struct {
	Code string
}

func (RoomClosedEvent) sessionEvent() {}

// CoordinatorMessage represents a message from a session to the coordinator.
type CoordinatorMessage interface {
	coordinatorMessage()
}

// ApplyMsg asks to land an element on the session's room board.
type ApplyMsg struct {
	SessionID SessionID
	Coord     hex.Coord
	Element   tile.Element
	Policy    board.Policy
}

func (ApplyMsg) coordinatorMessage() {}

// LeaveRoomMsg removes the session from its room.
type LeaveRoomMsg struct {
	SessionID SessionID
}

func (LeaveRoomMsg) coordinatorMessage() {}

// SessionDisconnectedMsg is sent when a session disconnects.
type SessionDisconnectedMsg struct {
	SessionID SessionID
}

func (SessionDisconnectedMsg) coordinatorMessage() {}
