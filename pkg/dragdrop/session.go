package dragdrop

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownItem  = errors.New("dragdrop: item is not on the board")
	ErrNoActiveDrag = errors.New("dragdrop: no drag in progress")
)

// Board is the authoritative store behind a Session.
type Board interface {
	Fetch(ctx context.Context) (Partition, error)
	Reorder(ctx context.Context, moves []Move) error
}

// Session holds the board a user is rearranging. The current partition is
// updated optimistically; confirmed is the last state the Board accepted or
// returned, and is what a cancelled drag reverts to.
type Session struct {
	board Board
	below BelowFunc

	mu        sync.Mutex
	confirmed Partition
	current   Partition
	drag      *Drag
}

// NewSession loads the board. A nil below uses BelowMidpoint.
func NewSession(ctx context.Context, board Board, below BelowFunc) (*Session, error) {
	if below == nil {
		below = BelowMidpoint
	}
	s := &Session{board: board, below: below}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces local state with a fresh fetch and drops any active drag.
func (s *Session) Reload(ctx context.Context) error {
	p, err := s.board.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch board: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmed = p.Clone()
	s.current = p.Clone()
	s.drag = nil
	return nil
}

// Partition returns a copy of the state to render.
func (s *Session) Partition() Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Active returns the id of the dragged item.
func (s *Session) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag == nil {
		return "", false
	}
	return s.drag.ActiveID, true
}

// Start marks itemID as dragged. The partition is not changed.
func (s *Session) Start(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := DragStart(s.current, itemID)
	if !ok {
		return ErrUnknownItem
	}
	s.drag = &d
	return nil
}

// Over applies a hover event. Without an active drag it does nothing.
func (s *Session) Over(target Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag == nil {
		return
	}
	next, d := DragOver(s.current, *s.drag, target, s.below)
	s.current = next
	s.drag = &d
}

// Cancel abandons the drag and reverts to the confirmed partition.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *Session) cancelLocked() {
	s.drag = nil
	s.current = s.confirmed.Clone()
}

// Drop ends the drag on target. A nil or unknown target cancels without
// contacting the Board. Otherwise the settled partition becomes current
// before the move list is sent; if sending fails the session reloads and
// the send error is returned.
func (s *Session) Drop(ctx context.Context, target *Target) error {
	s.mu.Lock()
	if s.drag == nil {
		s.mu.Unlock()
		return ErrNoActiveDrag
	}
	next, moves, ok := DragEnd(s.current, *s.drag, target, s.below)
	s.drag = nil
	if !ok {
		s.cancelLocked()
		s.mu.Unlock()
		return nil
	}
	s.current = next
	s.mu.Unlock()

	if err := s.board.Reorder(ctx, moves); err != nil {
		if reloadErr := s.Reload(ctx); reloadErr != nil {
			s.Cancel()
			return errors.Join(err, reloadErr)
		}
		return err
	}

	s.mu.Lock()
	s.confirmed = next.Clone()
	s.mu.Unlock()
	return nil
}
