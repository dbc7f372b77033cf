package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"google.golang.org/genai"
)

// contentGenerator is the subset of the genai client used by Generator.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger     *slog.Logger
	client     contentGenerator
	model      string
	maxRetries int
	baseDelay  time.Duration
}

// Ensure Generator implements generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from LLM configuration.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, client.Models, cfg)
}

func newGenerator(logger *slog.Logger, client contentGenerator, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelay := time.Duration(cfg.RetryDelaySeconds) * time.Second
	if baseDelay <= 0 {
		baseDelay = 2 * time.Second
	}

	return &Generator{
		logger:     logger.With(slog.String("component", "gemini_generator")),
		client:     client,
		model:      cfg.ModelName,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}, nil
}

// Generate implements generation.Generator.Generate
func (g *Generator) Generate(ctx context.Context, topic string) ([]domain.Suggestion, error) {
	topic, err := generation.ValidateTopic(topic)
	if err != nil {
		return nil, err
	}

	prompt, err := renderPrompt(topic, generation.SuggestionCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	response, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return g.parseResponse(ctx, response)
}

// callWithRetry calls the model, retrying transient failures with exponential
// backoff: delay = baseDelay * 2^attempt * (0.5 + rand[0, 0.5)). Jitter comes
// from the package-level math/rand source, which is safe for concurrent calls.
func (g *Generator) callWithRetry(ctx context.Context, prompt string) (*ResponseSchema, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	for attempt := 0; ; attempt++ {
		log.Debug("making Gemini API call",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", g.maxRetries+1))

		response, err := g.call(ctx, prompt)
		if err == nil {
			return response, nil
		}

		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			log.Warn("permanent Gemini error, not retrying", slog.String("error", err.Error()))
			return nil, err
		}

		if attempt >= g.maxRetries {
			log.Warn("maximum Gemini retry attempts reached",
				slog.Int("max_retries", g.maxRetries),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, g.maxRetries, err)
		}

		backoff := float64(g.baseDelay) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rand.Float64()*0.5))

		log.Info("retrying Gemini call after delay",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()))

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// call performs a single request and classifies its outcome.
func (g *Generator) call(ctx context.Context, prompt string) (*ResponseSchema, error) {
	resp, err := g.client.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	var parsed ResponseSchema
	if err := json.Unmarshal([]byte(text.String()), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	return &parsed, nil
}

// parseResponse validates the model's suggestions and keeps at most
// generation.SuggestionCount of them.
func (g *Generator) parseResponse(ctx context.Context, response *ResponseSchema) ([]domain.Suggestion, error) {
	if response == nil || len(response.Tasks) == 0 {
		return nil, fmt.Errorf("%w: no tasks in response", generation.ErrInvalidResponse)
	}

	tasks := response.Tasks
	if len(tasks) > generation.SuggestionCount {
		tasks = tasks[:generation.SuggestionCount]
	}

	suggestions := make([]domain.Suggestion, 0, len(tasks))
	for i, task := range tasks {
		title := strings.TrimSpace(task.Title)
		description := strings.TrimSpace(task.Description)
		if title == "" {
			return nil, fmt.Errorf("%w: task %d missing title", generation.ErrInvalidResponse, i)
		}
		if description == "" {
			return nil, fmt.Errorf("%w: task %d missing description", generation.ErrInvalidResponse, i)
		}
		suggestions = append(suggestions, domain.Suggestion{Title: title, Description: description})
	}

	logger.FromContextOrDefault(ctx, g.logger).Debug("parsed Gemini suggestions",
		slog.Int("received", len(response.Tasks)),
		slog.Int("kept", len(suggestions)))

	return suggestions, nil
}
