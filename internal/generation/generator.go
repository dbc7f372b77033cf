package generation

import (
	"context"
	"strings"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// SuggestionCount is the number of suggestions a generator returns.
const SuggestionCount = 5

// Generator produces task suggestions for a topic.
type Generator interface {
	// Generate returns ordered suggestions for topic. A blank topic fails with
	// ErrInvalidTopic. Implementations must not touch the task store.
	Generate(ctx context.Context, topic string) ([]domain.Suggestion, error)
}

// ValidateTopic returns the trimmed topic or ErrInvalidTopic.
func ValidateTopic(topic string) (string, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return "", ErrInvalidTopic
	}
	return trimmed, nil
}
