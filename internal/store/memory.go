package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/todmy/doc-comparer/pkg/models"
)

// ErrNotFound is returned when no comparison exists under the given id.
var ErrNotFound = errors.New("comparison result not found")

type entry struct {
	result   *models.ComparisonResult
	storedAt time.Time
}

// Memory is an in-memory comparison store. Entries expire after a TTL and the
// store holds at most capacity entries, evicting the oldest first, so a
// long-running process does not accumulate results forever. Safe for
// concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string

	ttl      time.Duration
	capacity int
	logger   zerolog.Logger

	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemory creates a store with the given TTL and capacity. A TTL of zero
// disables expiry; a capacity of zero disables the size bound. The background
// sweeper stops when Close is called.
func NewMemory(ttl time.Duration, capacity int, logger zerolog.Logger) *Memory {
	m := &Memory{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		logger:   logger,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweeper()
	}
	return m
}

// Put stores the result under a freshly generated identifier, assigns that
// identifier to the result, and returns it. Existing entries are never
// overwritten.
func (m *Memory) Put(result *models.ComparisonResult) string {
	id := uuid.NewString()
	result.ID = id

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capacity > 0 {
		for len(m.order) >= m.capacity {
			m.evictOldestLocked()
		}
	}
	m.entries[id] = entry{result: result, storedAt: time.Now()}
	m.order = append(m.order, id)
	return id
}

// Get returns the result stored under id, or ErrNotFound if the id is unknown
// or the entry has expired.
func (m *Memory) Get(id string) (*models.ComparisonResult, error) {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && time.Since(e.storedAt) > m.ttl {
		return nil, ErrNotFound
	}
	return e.result, nil
}

// Len reports the number of live entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close stops the background sweeper. Stored entries remain readable.
func (m *Memory) Close() {
	m.closeOnce.Do(func() {
		close(m.stop)
	})
}

func (m *Memory) sweeper() {
	interval := m.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sweep(time.Now())
		}
	}
}

// sweep drops expired entries. Insertion order doubles as expiry order since
// storedAt only moves forward.
func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for len(m.order) > 0 {
		oldest := m.entries[m.order[0]]
		if now.Sub(oldest.storedAt) <= m.ttl {
			break
		}
		m.evictOldestLocked()
		evicted++
	}
	if evicted > 0 {
		m.logger.Debug().Int("evicted", evicted).Int("remaining", len(m.entries)).Msg("swept expired comparisons")
	}
}

func (m *Memory) evictOldestLocked() {
	id := m.order[0]
	m.order = m.order[1:]
	delete(m.entries, id)
}
