// Package storagetest provides an in-memory store with a deterministic clock
// for tests.
package storagetest

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/storage"
)

// Clock advances by Step on every call to Now.
type Clock struct {
	mu      sync.Mutex
	current time.Time
	Step    time.Duration
}

func NewClock() *Clock {
	return &Clock{
		current: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Step:    time.Second,
	}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(c.Step)
	return c.current
}

// NewStore returns an initialized store over a fresh memory backend.
// Record ids are sequential ("id-1", "id-2", ...).
func NewStore(t *testing.T) (*storage.Store, *storage.MemoryBackend, *Clock) {
	t.Helper()

	backend := storage.NewMemoryBackend()
	clock := NewClock()

	var mu sync.Mutex
	seq := 0
	store := storage.New(backend,
		storage.WithClock(clock.Now),
		storage.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	require.NoError(t, store.Initialize())

	return store, backend, clock
}
