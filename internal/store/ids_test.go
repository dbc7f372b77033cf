package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGenerator_ConcurrentUnique(t *testing.T) {
	gen := NewSequenceGenerator(0)

	const workers, perWorker = 8, 250
	var (
		mu   sync.Mutex
		seen = make(map[string]bool, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NewID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker, "every allocated ID must be unique")
}

func TestSequenceGenerator_StartsAfterOffset(t *testing.T) {
	gen := NewSequenceGenerator(41)
	assert.Equal(t, "42", gen.NewID())
	assert.Equal(t, "43", gen.NewID())
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator("uuid")
	require.NoError(t, err)
	assert.IsType(t, UUIDGenerator{}, gen)

	gen, err = NewIDGenerator("sequence")
	require.NoError(t, err)
	assert.Equal(t, "1", gen.NewID())

	_, err = NewIDGenerator("snowflake")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrInvalidEntity, ErrNotFound)
	assert.Equal(t, "entity not found: task", ErrTaskNotFound.Error())
}
