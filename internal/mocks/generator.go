package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, topic string) ([]domain.Suggestion, error)

	// Default response values
	Suggestions []domain.Suggestion
	Err         error

	mu     sync.Mutex
	topics []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, topic string) ([]domain.Suggestion, error) {
	m.mu.Lock()
	m.topics = append(m.topics, topic)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, topic)
	}
	return m.Suggestions, m.Err
}

// Topics returns the topics passed to Generate, in call order.
func (m *MockGenerator) Topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.topics...)
}
