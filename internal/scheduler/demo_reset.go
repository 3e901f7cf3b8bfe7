// Package scheduler runs the periodic demo reset: the store is wiped and
// the sample catalogue seeded again on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/learnhub/internal/demo"
	"github.com/mrlokans/learnhub/internal/logger"
	"github.com/mrlokans/learnhub/internal/storage"
)

// DemoResetScheduler wipes and reseeds the store on a schedule.
type DemoResetScheduler struct {
	store    *storage.Store
	schedule string
	log      *logger.Logger

	cron        *cron.Cron
	entryID     cron.EntryID
	mu          sync.RWMutex
	isRunning   bool
	isResetting bool
	lastResetAt *time.Time
	cancelFunc  context.CancelFunc
}

func NewDemoResetScheduler(store *storage.Store, schedule string, log *logger.Logger) *DemoResetScheduler {
	if log == nil {
		log = logger.NewNop()
	}
	return &DemoResetScheduler{
		store:    store,
		schedule: schedule,
		log:      log.With("component", "demo_reset"),
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start registers the reset job and starts the cron loop. The scheduler
// stops when ctx is cancelled.
func (s *DemoResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunNow(); err != nil {
			s.log.Error("demo reset failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reset job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info("scheduler started",
		"schedule", s.schedule,
		"description", CronDescription(s.schedule),
	)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running reset to finish and stops the cron loop.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	entryID := s.entryID
	s.mu.Unlock()

	// running jobs take s.mu, so wait for them outside the lock
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(entryID)

	if cancel != nil {
		cancel()
	}
	s.log.Info("scheduler stopped")
}

// RunNow resets the store and reseeds it synchronously. A reset already in
// progress makes this a no-op.
func (s *DemoResetScheduler) RunNow() error {
	s.mu.Lock()
	if s.isResetting {
		s.mu.Unlock()
		s.log.Debug("reset skipped, already resetting")
		return nil
	}
	s.isResetting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isResetting = false
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	if _, err := demo.Seed(s.store, s.log); err != nil {
		return fmt.Errorf("reseed store: %w", err)
	}

	now := time.Now()
	s.mu.Lock()
	s.lastResetAt = &now
	s.mu.Unlock()

	s.log.Info("demo data reset", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *DemoResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *DemoResetScheduler) IsResetting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isResetting
}

// LastResetAt returns when the last successful reset finished, or nil.
func (s *DemoResetScheduler) LastResetAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResetAt
}

// NextRunTime returns when the next reset will occur, or nil when stopped.
func (s *DemoResetScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
