package generation

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

var (
	// ErrInvalidTopic rejects a blank topic before any backend is called.
	ErrInvalidTopic = fmt.Errorf("%w: topic is required", domain.ErrValidation)

	// ErrGenerationFailed covers backend failures with no more specific cause.
	ErrGenerationFailed = errors.New("failed to generate task suggestions")

	// ErrInvalidResponse means the backend answered with something that does
	// not decode into usable suggestions. Not retried.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked means the model's safety filters refused the topic.
	// Not retried.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure marks failures worth retrying (rate limits,
	// timeouts, 5xx).
	ErrTransientFailure = errors.New("transient error during suggestion generation")

	ErrInvalidConfig = errors.New("invalid generator configuration")
)
