package multiplayer

import (
	"context"
	"errors"
	"sync"
)

// ErrSessionClosed is returned by Next once the session is closed.
var ErrSessionClosed = errors.New("multiplayer: session closed")

// SessionHandle is how the coordinator reaches a session without depending
// on Wish or Bubble Tea.
type SessionHandle interface {
	// ID returns the unique session identifier.
	ID() SessionID

	// Send delivers an event without blocking.
	Send(evt SessionEvent)

	// Done returns a channel that closes when the session ends.
	Done() <-chan struct{}
}

// ChannelSession is a SessionHandle with a bounded event queue, read by a
// single consumer through Next.
//
// When the queue is full a new event makes room by dropping, in order: the
// oldest BoardChangedEvent, then the oldest membership event. If neither is
// queued, a new board or membership event is dropped instead. Room errors
// and RoomClosedEvent are never dropped. A reader that misses a board event
// sees a gap in Seq and resynchronizes from a snapshot.
type ChannelSession struct {
	id    SessionID
	limit int

	mu     sync.Mutex
	queue  []SessionEvent
	notify chan struct{} // one pending wake-up for the reader

	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSession creates a session queueing up to limit events.
func NewChannelSession(id SessionID, limit int) *ChannelSession {
	if limit < 1 {
		limit = 64
	}
	return &ChannelSession{
		id:     id,
		limit:  limit,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *ChannelSession) ID() SessionID {
	return s.id
}

// Send queues an event, applying the drop policy when the queue is full.
func (s *ChannelSession) Send(evt SessionEvent) {
	select {
	case <-s.done:
		return
	default:
	}

	s.mu.Lock()
	if len(s.queue) >= s.limit && !s.makeRoom() && droppable(evt) {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, evt)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// makeRoom drops one stale event. Must be called with the lock held.
func (s *ChannelSession) makeRoom() bool {
	for _, stale := range []func(SessionEvent) bool{isBoardEvent, isMemberEvent} {
		for i, queued := range s.queue {
			if stale(queued) {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				return true
			}
		}
	}
	return false
}

func isBoardEvent(evt SessionEvent) bool {
	_, ok := evt.(BoardChangedEvent)
	return ok
}

func isMemberEvent(evt SessionEvent) bool {
	switch evt.(type) {
	case MemberJoinedEvent, MemberLeftEvent:
		return true
	}
	return false
}

func droppable(evt SessionEvent) bool {
	return isBoardEvent(evt) || isMemberEvent(evt)
}

// Next blocks until an event is queued, the session closes, or ctx ends.
func (s *ChannelSession) Next(ctx context.Context) (SessionEvent, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			evt := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return evt, nil
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
			return nil, ErrSessionClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Len returns the number of queued events.
func (s *ChannelSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Done returns the done channel.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close ends the session and discards queued events. Safe to call multiple
// times.
func (s *ChannelSession) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.queue = nil
		s.mu.Unlock()
	})
}
