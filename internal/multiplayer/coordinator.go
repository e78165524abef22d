package multiplayer

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hextiles/internal/board"
)

// CoordinatorConfig holds configuration for the coordinator.
type CoordinatorConfig struct {
	MaxMembers int // per room, 0 means unlimited
}

// DefaultCoordinatorConfig returns sensible defaults.
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		MaxMembers: 8,
	}
}

// BoardSaver persists moves made on rooms hosted from a saved board.
// storage.Store satisfies it.
type BoardSaver interface {
	UpdateBoard(id string, b *board.Board) error
	RecordMove(id string, res board.Result) (int64, error)
}

// Coordinator manages rooms and serializes the moves made in them.
type Coordinator struct {
	config CoordinatorConfig
	saver  BoardSaver  // optional
	logger *log.Logger // optional
	now    func() time.Time

	mu          sync.RWMutex
	rooms       map[string]*Room    // code -> room
	sessionRoom map[SessionID]string // sessionID -> room code

	msgChan  chan CoordinatorMessage
	done     chan struct{}
	stopOnce sync.Once
}

// NewCoordinator creates a new coordinator.
func NewCoordinator(cfg CoordinatorConfig) *Coordinator {
	return &Coordinator{
		config:      cfg,
		now:         time.Now,
		rooms:       make(map[string]*Room),
		sessionRoom: make(map[SessionID]string),
		msgChan:     make(chan CoordinatorMessage, 256),
		done:        make(chan struct{}),
	}
}

// SetSaver sets the optional board saver.
func (c *Coordinator) SetSaver(saver BoardSaver) {
	c.saver = saver
}

// SetLogger sets the optional logger.
func (c *Coordinator) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// Start begins the coordinator's background processing.
func (c *Coordinator) Start() {
	go c.processMessages()
}

// Stop shuts down the coordinator and tells every member its room closed.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)

		c.mu.Lock()
		defer c.mu.Unlock()
		for code, room := range c.rooms {
			room.broadcast(RoomClosedEvent{Code: code})
		}
	})
}

// Send sends a message to the coordinator for async processing.
func (c *Coordinator) Send(msg CoordinatorMessage) {
	select {
	case c.msgChan <- msg:
	case <-c.done:
	}
}

// Host opens a room around a copy of b with session as its first member.
// boardID links the room to a saved board, or is empty.
func (c *Coordinator) Host(session SessionHandle, name string, b *board.Board, boardID string) (RoomInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, inRoom := c.sessionRoom[session.ID()]; inRoom {
		return RoomInfo{}, ErrAlreadyInRoom
	}

	code := c.generateUniqueCode()
	room := newRoom(code, boardID, b.Clone(), c.now())
	room.add(session, name)

	c.rooms[code] = room
	c.sessionRoom[session.ID()] = code
	c.logInfo("room opened", "room", code, "host", name, "board", boardID)

	return c.info(room), nil
}

// Join adds session to the room with the given code.
func (c *Coordinator) Join(session SessionHandle, name, code string) (RoomInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, inRoom := c.sessionRoom[session.ID()]; inRoom {
		return RoomInfo{}, ErrAlreadyInRoom
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	room, exists := c.rooms[code]
	if !exists {
		return RoomInfo{}, fmt.Errorf("%w: %q", ErrRoomNotFound, code)
	}
	if c.config.MaxMembers > 0 && len(room.members) >= c.config.MaxMembers {
		return RoomInfo{}, ErrRoomFull
	}

	room.broadcast(MemberJoinedEvent{Code: code, Name: name, Members: len(room.members) + 1})
	room.add(session, name)
	c.sessionRoom[session.ID()] = code
	c.logInfo("room joined", "room", code, "member", name, "members", len(room.members))

	return c.info(room), nil
}

// Snapshot returns a copy of a room's board and the number of its last
// move. Members use it to resynchronize after missing an event.
func (c *Coordinator) Snapshot(code string) (*board.Board, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	room, ok := c.rooms[code]
	if !ok {
		return nil, 0, false
	}
	return room.board.Clone(), room.seq, true
}

// info must be called with the lock held.
func (c *Coordinator) info(room *Room) RoomInfo {
	return RoomInfo{
		Code:    room.Code,
		BoardID: room.BoardID,
		Board:   room.board.Clone(),
		Seq:     room.seq,
		Members: room.memberNames(),
	}
}

// processMessages handles incoming messages.
func (c *Coordinator) processMessages() {
	for {
		select {
		case msg := <-c.msgChan:
			c.handleMessage(msg)
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) handleMessage(msg CoordinatorMessage) {
	switch m := msg.(type) {
	case ApplyMsg:
		c.handleApply(m)
	case LeaveRoomMsg:
		c.leave(m.SessionID)
	case SessionDisconnectedMsg:
		c.leave(m.SessionID)
	}
}

func (c *Coordinator) handleApply(msg ApplyMsg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.rooms[c.sessionRoom[msg.SessionID]]
	if !ok {
		return
	}
	session := room.members[msg.SessionID]

	res, err := room.board.Apply(msg.Coord, msg.Element, msg.Policy)
	if err != nil {
		session.Send(RoomErrorEvent{Message: err.Error()})
		return
	}
	room.seq++
	room.broadcast(BoardChangedEvent{
		Code:   room.Code,
		Seq:    room.seq,
		By:     room.names[msg.SessionID],
		Result: res,
	})

	if c.saver != nil && room.BoardID != "" {
		if err := c.saver.UpdateBoard(room.BoardID, room.board); err != nil {
			c.logWarn("could not save room board", "room", room.Code, "board", room.BoardID, "error", err)
			return
		}
		if _, err := c.saver.RecordMove(room.BoardID, res); err != nil {
			c.logWarn("could not record room move", "room", room.Code, "board", room.BoardID, "error", err)
		}
	}
}

func (c *Coordinator) leave(id SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	code, inRoom := c.sessionRoom[id]
	if !inRoom {
		return
	}
	delete(c.sessionRoom, id)

	room, exists := c.rooms[code]
	if !exists {
		return
	}
	name, _ := room.remove(id)
	if len(room.members) == 0 {
		delete(c.rooms, code)
		c.logInfo("room closed", "room", code, "moves", room.seq)
		return
	}
	room.broadcast(MemberLeftEvent{Code: code, Name: name, Members: len(room.members)})
}

func (c *Coordinator) generateUniqueCode() string {
	for {
		code := generateJoinCode()
		if _, exists := c.rooms[code]; !exists {
			return code
		}
	}
}

// generateJoinCode creates a 6-character uppercase alphanumeric code.
func generateJoinCode() string {
	b := make([]byte, 4) // base32 of 4 bytes is 8 chars, we take 6
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return base32.StdEncoding.EncodeToString(b)[:6]
}

// Members returns the member names of a room in join order.
func (c *Coordinator) Members(code string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	room, ok := c.rooms[code]
	if !ok {
		return nil
	}
	return room.memberNames()
}

// RoomCount returns the number of open rooms.
func (c *Coordinator) RoomCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}

func (c *Coordinator) logInfo(msg string, kv ...any) {
	if c.logger != nil {
		c.logger.Info(msg, kv...)
	}
}

func (c *Coordinator) logWarn(msg string, kv ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, kv...)
	}
}
