package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubGenerator_Generate(t *testing.T) {
	t.Parallel()
	g := NewStubGenerator(0, nil)

	suggestions, err := g.Generate(context.Background(), "Python")

	require.NoError(t, err)
	require.Len(t, suggestions, SuggestionCount)
	for i, s := range suggestions {
		assert.Contains(t, s.Title, "Python", "title %d", i)
		assert.Contains(t, s.Description, "Python", "description %d", i)
	}
	assert.Equal(t, "Research Python fundamentals", suggestions[0].Title)
	assert.Equal(t, "Build a Python project", suggestions[4].Title)
}

func TestStubGenerator_InvalidTopic(t *testing.T) {
	t.Parallel()
	g := NewStubGenerator(time.Hour, nil)

	for _, topic := range []string{"", "   ", "\t\n"} {
		suggestions, err := g.Generate(context.Background(), topic)
		assert.ErrorIs(t, err, ErrInvalidTopic)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, suggestions)
	}
}

func TestStubGenerator_TrimsTopic(t *testing.T) {
	t.Parallel()
	suggestions, err := NewStubGenerator(0, nil).Generate(context.Background(), "  Go  ")
	require.NoError(t, err)
	assert.Equal(t, "Practice Go basics", suggestions[2].Title)
}

func TestStubGenerator_WaitsForDelay(t *testing.T) {
	t.Parallel()
	const delay = 30 * time.Millisecond
	g := NewStubGenerator(delay, nil)

	start := time.Now()
	_, err := g.Generate(context.Background(), "Rust")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestStubGenerator_HonoursCancellation(t *testing.T) {
	t.Parallel()
	g := NewStubGenerator(time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx, "Rust")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestStubGenerator_ConcurrentCallsDoNotSerialize(t *testing.T) {
	t.Parallel()
	const delay = 50 * time.Millisecond
	g := NewStubGenerator(delay, nil)

	start := time.Now()
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := g.Generate(context.Background(), "Go")
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}

	assert.Less(t, time.Since(start), 4*delay, "delays should overlap, not queue")
}

func TestValidateTopic(t *testing.T) {
	t.Parallel()
	topic, err := ValidateTopic(" Kubernetes ")
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes", topic)
	assert.False(t, strings.HasPrefix(topic, " "))
}
