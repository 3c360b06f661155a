package dragdrop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	state      Partition
	fetches    int
	sent       [][]Move
	reorderErr error
	// seen holds the session partition at the moment Reorder is called
	seen    []Partition
	session *Session
}

func (b *fakeBoard) Fetch(context.Context) (Partition, error) {
	b.fetches++
	return b.state.Clone(), nil
}

func (b *fakeBoard) Reorder(_ context.Context, moves []Move) error {
	b.sent = append(b.sent, moves)
	if b.session != nil {
		b.seen = append(b.seen, b.session.Partition())
	}
	return b.reorderErr
}

func newSession(t *testing.T, b *fakeBoard) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), b, nil)
	require.NoError(t, err)
	b.session = s
	return s
}

func TestSessionDropSendsFullMoveList(t *testing.T) {
	b := &fakeBoard{state: scenarioBoard()}
	s := newSession(t, b)

	require.NoError(t, s.Start("T1"))
	id, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "T1", id)

	s.Over(above("T3"))
	assert.Equal(t, []string{"T1", "T3"}, s.Partition().ItemIDs("col-b"))

	target := above("T3")
	require.NoError(t, s.Drop(context.Background(), &target))

	require.Len(t, b.sent, 1)
	assert.Equal(t, []Move{
		{ItemID: "T2", GroupID: "col-a", Position: 0},
		{ItemID: "T1", GroupID: "col-b", Position: 0},
		{ItemID: "T3", GroupID: "col-b", Position: 1},
	}, b.sent[0])

	// optimistic state was visible while the request was in flight
	assert.Equal(t, []string{"T1", "T3"}, b.seen[0].ItemIDs("col-b"))

	_, ok = s.Active()
	assert.False(t, ok)
	assert.Equal(t, 1, b.fetches)

	// the accepted state is now what a later cancel reverts to
	require.NoError(t, s.Start("T2"))
	s.Over(Target{ID: "col-b"})
	s.Cancel()
	assert.Equal(t, []string{"T1", "T3"}, s.Partition().ItemIDs("col-b"))
}

func TestSessionDropFailureReloads(t *testing.T) {
	b := &fakeBoard{state: scenarioBoard(), reorderErr: errors.New("409 conflict")}
	s := newSession(t, b)

	require.NoError(t, s.Start("T1"))
	s.Over(above("T3"))
	target := above("T3")

	err := s.Drop(context.Background(), &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")

	assert.Equal(t, 2, b.fetches)
	assert.Equal(t, scenarioBoard(), s.Partition())
	_, ok := s.Active()
	assert.False(t, ok)
}

func TestSessionCancelledDropMakesNoCall(t *testing.T) {
	b := &fakeBoard{state: scenarioBoard()}
	s := newSession(t, b)

	require.NoError(t, s.Start("T1"))
	s.Over(above("T3"))
	require.NotEqual(t, scenarioBoard(), s.Partition())

	require.NoError(t, s.Drop(context.Background(), nil))

	assert.Empty(t, b.sent)
	assert.Equal(t, scenarioBoard(), s.Partition())
	_, ok := s.Active()
	assert.False(t, ok)
}

func TestSessionGuards(t *testing.T) {
	b := &fakeBoard{state: scenarioBoard()}
	s := newSession(t, b)

	assert.ErrorIs(t, s.Start("ghost"), ErrUnknownItem)
	assert.ErrorIs(t, s.Drop(context.Background(), &Target{ID: "T3"}), ErrNoActiveDrag)

	// hover without a drag is ignored
	s.Over(above("T3"))
	assert.Equal(t, scenarioBoard(), s.Partition())
}

func TestSessionPartitionIsACopy(t *testing.T) {
	b := &fakeBoard{state: scenarioBoard()}
	s := newSession(t, b)

	p := s.Partition()
	p.Groups[0].Items[0].ID = "mutated"
	assert.Equal(t, scenarioBoard(), s.Partition())
}
