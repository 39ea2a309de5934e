package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todmy/doc-comparer/pkg/models"
)

func newResult() *models.ComparisonResult {
	return &models.ComparisonResult{SimilarityScore: 42, CreatedAt: time.Now()}
}

func TestMemory_PutAssignsIDAndGetReturnsSameResult(t *testing.T) {
	m := NewMemory(time.Minute, 10, zerolog.Nop())
	defer m.Close()

	result := newResult()
	id := m.Put(result)

	require.NotEmpty(t, id)
	assert.Equal(t, id, result.ID)

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestMemory_GetUnknownID(t *testing.T) {
	m := NewMemory(time.Minute, 10, zerolog.Nop())
	defer m.Close()

	_, err := m.Get("no-such-id")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EntriesExpireAfterTTL(t *testing.T) {
	m := NewMemory(15*time.Millisecond, 10, zerolog.Nop())
	defer m.Close()

	id := m.Put(newResult())

	_, err := m.Get(id)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = m.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SweepDropsExpiredEntries(t *testing.T) {
	m := NewMemory(time.Minute, 10, zerolog.Nop())
	defer m.Close()

	m.Put(newResult())
	m.Put(newResult())
	require.Equal(t, 2, m.Len())

	m.sweep(time.Now().Add(2 * time.Minute))

	assert.Equal(t, 0, m.Len())
}

func TestMemory_CapacityEvictsOldestFirst(t *testing.T) {
	m := NewMemory(time.Minute, 2, zerolog.Nop())
	defer m.Close()

	first := m.Put(newResult())
	second := m.Put(newResult())
	third := m.Put(newResult())

	_, err := m.Get(first)
	assert.ErrorIs(t, err, ErrNotFound, "oldest entry is evicted at capacity")

	_, err = m.Get(second)
	assert.NoError(t, err)
	_, err = m.Get(third)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory(0, 10, zerolog.Nop())
	defer m.Close()

	id := m.Put(newResult())
	time.Sleep(5 * time.Millisecond)

	_, err := m.Get(id)
	assert.NoError(t, err)
}

func TestMemory_ConcurrentPutAndGet(t *testing.T) {
	m := NewMemory(time.Minute, 0, zerolog.Nop())
	defer m.Close()

	var wg sync.WaitGroup
	ids := make([]string, 50)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = m.Put(newResult())
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		got, err := m.Get(id)
		require.NoError(t, err, fmt.Sprintf("entry %d", i))
		assert.Equal(t, id, got.ID)
	}
	assert.Equal(t, 50, m.Len())
}

func TestMemory_CloseIsIdempotent(t *testing.T) {
	m := NewMemory(time.Minute, 10, zerolog.Nop())

	m.Close()
	m.Close()

	id := m.Put(newResult())
	_, err := m.Get(id)
	assert.NoError(t, err, "closing only stops the sweeper")
}
