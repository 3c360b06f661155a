package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpiredSessions(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestSweeperRunsImmediatelyAndOnTick(t *testing.T) {
	p := &countingPurger{}
	s := NewSessionSweeper(p, 10*time.Millisecond)
	s.Start()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := p.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, p.calls.Load())
}

func TestSweeperSurvivesErrors(t *testing.T) {
	p := &countingPurger{err: errors.New("database is locked")}
	s := NewSessionSweeper(p, 10*time.Millisecond)
	s.Start()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()
}
