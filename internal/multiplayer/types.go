// Package multiplayer lets several sessions play on one shared board.
//
// A session hosts a room around a board and other sessions join it by a
// short code. The Coordinator owns the room's board: moves arrive as
// messages, are applied in arrival order, and every member receives the
// resulting board.Result to replay on its own copy. Results are numbered so
// a member that misses one can resynchronize from a snapshot.
package multiplayer

import (
	"errors"
	"time"

	"github.com/vovakirdan/hextiles/internal/board"
)

var (
	// ErrRoomNotFound is returned when joining with an unknown code.
	ErrRoomNotFound = errors.New("multiplayer: room not found")
	// ErrRoomFull is returned when a room has reached its member limit.
	ErrRoomFull = errors.New("multiplayer: room is full")
	// ErrAlreadyInRoom is returned when a session hosts or joins twice.
	ErrAlreadyInRoom = errors.New("multiplayer: session already in a room")
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// Room is a board shared by a set of sessions.
type Room struct {
	Code      string
	BoardID   string // storage ID, empty for unsaved boards
	CreatedAt time.Time

	board   *board.Board
	seq     uint64
	members map[SessionID]SessionHandle
	names   map[SessionID]string
	order   []SessionID // join order, for stable member lists
}

func newRoom(code, boardID string, b *board.Board, now time.Time) *Room {
	return &Room{
		Code:      code,
		BoardID:   boardID,
		CreatedAt: now,
		board:     b,
		members:   make(map[SessionID]SessionHandle),
		names:     make(map[SessionID]string),
	}
}

func (r *Room) add(s SessionHandle, name string) {
	r.members[s.ID()] = s
	r.names[s.ID()] = name
	r.order = append(r.order, s.ID())
}

func (r *Room) remove(id SessionID) (string, bool) {
	name, ok := r.names[id]
	if !ok {
		return "", false
	}
	delete(r.members, id)
	delete(r.names, id)
	for i, m := range r.order {
		if m == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return name, true
}

// memberNames returns member names in join order.
func (r *Room) memberNames() []string {
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.names[id])
	}
	return names
}

func (r *Room) broadcast(evt SessionEvent) {
	for _, id := range r.order {
		r.members[id].Send(evt)
	}
}

// RoomInfo is what a session receives on hosting or joining.
type RoomInfo struct {
	Code    string
	BoardID string
	Board   *board.Board // private copy for the session
	Seq     uint64       // number of the last result applied to Board
	Members []string
}
