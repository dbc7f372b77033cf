// Package redact scrubs credentials and other sensitive fragments from strings
// before they reach logs or error responses.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder      = "[REDACTED]"
	RedactedTokenPlaceholder  = "[REDACTED_JWT]"
	RedactedKeyPlaceholder    = "[REDACTED_KEY]"
	RedactedSecretPlaceholder = "[REDACTED_SECRET]"
	RedactedEmailPlaceholder  = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder   = "[REDACTED_PATH]"
	RedactedStackPlaceholder  = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; token and key rules must precede the generic
// secret rule so their more specific placeholder wins.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		placeholder: RedactedTokenPlaceholder,
	},
	{
		// Google API keys, as used by the Gemini client.
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|x-goog-api-key)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(jwt[_-]?secret|secret|password|passwd|token)(["'\s:=]+)[^"'&\s,]{6,}`),
		placeholder: RedactedSecretPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: RedactedStackPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:/[\w.-]+){2,}\.go(?::\d+)?|(?:/[\w.-]+){3,}`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String returns input with every sensitive fragment replaced by its placeholder.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts the message of err. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
