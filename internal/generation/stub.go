package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
)

// DefaultStubDelay approximates the latency of a real generation call.
const DefaultStubDelay = 1500 * time.Millisecond

// suggestionTemplates hold one title and one description format each; both
// take the topic as their single argument.
var suggestionTemplates = [SuggestionCount]struct {
	title       string
	description string
}{
	{
		title:       "Research %s fundamentals",
		description: "Study the basic concepts and principles of %s to build a strong foundation.",
	},
	{
		title:       "Find quality %s resources",
		description: "Identify and bookmark reliable learning materials, tutorials, and documentation for %s.",
	},
	{
		title:       "Practice %s basics",
		description: "Start with simple exercises and examples to get hands-on experience with %s.",
	},
	{
		title:       "Join %s community",
		description: "Connect with others learning %s through forums, Discord servers, or local meetups.",
	},
	{
		title:       "Build a %s project",
		description: "Apply your knowledge by creating a small project that demonstrates your understanding of %s.",
	},
}

// StubGenerator returns five templated suggestions after an artificial delay.
// It stands in for a real LLM and performs no inference.
type StubGenerator struct {
	delay  time.Duration
	logger *slog.Logger
}

// Ensure StubGenerator implements Generator interface
var _ Generator = (*StubGenerator)(nil)

// NewStubGenerator creates a stub that waits delay before answering.
// A negative delay is treated as zero.
func NewStubGenerator(delay time.Duration, logger *slog.Logger) *StubGenerator {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StubGenerator{
		delay:  delay,
		logger: logger.With(slog.String("component", "stub_generator")),
	}
}

// Generate implements Generator.Generate
// The delay only suspends the calling goroutine and returns early with the
// context's error if the request is cancelled.
func (g *StubGenerator) Generate(ctx context.Context, topic string) ([]domain.Suggestion, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	topic, err := ValidateTopic(topic)
	if err != nil {
		return nil, err
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			log.Debug("stub generation cancelled", slog.String("error", ctx.Err().Error()))
			return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, ctx.Err())
		}
	}

	suggestions := make([]domain.Suggestion, 0, SuggestionCount)
	for _, tmpl := range suggestionTemplates {
		suggestions = append(suggestions, domain.Suggestion{
			Title:       fmt.Sprintf(tmpl.title, topic),
			Description: fmt.Sprintf(tmpl.description, topic),
		})
	}

	log.Debug("stub suggestions generated",
		slog.Int("count", len(suggestions)),
		slog.Int("topic_length", len(topic)))

	return suggestions, nil
}
