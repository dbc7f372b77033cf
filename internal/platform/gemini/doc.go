// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to suggest tasks for a topic.
//
// This package is an infrastructure adapter: it renders a prompt from a template,
// asks the model for a JSON document of suggestions, retries transient failures
// with exponential backoff and jitter, and converts the response into
// domain.Suggestion values. Safety blocks and malformed responses are treated as
// permanent failures and are not retried.
package gemini
