package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Real-Streeter/liberty-command/pkg/logger"
)

var log = logger.Component("SessionSweeper")

// Purger deletes expired sessions
type Purger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionSweeper periodically removes expired sessions
type SessionSweeper struct {
	purger   Purger
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewSessionSweeper creates a new sweeper running every interval
func NewSessionSweeper(purger Purger, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		purger:   purger,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the sweeper loop
func (s *SessionSweeper) Start() {
	log.WithField("interval", s.interval).Info("starting session sweeper")

	go func() {
		defer close(s.done)

		// Run immediately on start
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				log.Info("session sweeper stopped")
				return
			}
		}
	}()
}

// Stop stops the loop and waits for a running sweep to finish
func (s *SessionSweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	<-s.done
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		log.WithError(err).Error("failed to purge expired sessions")
		return
	}
	if n > 0 {
		log.WithField("count", n).Info("purged expired sessions")
	}
}
