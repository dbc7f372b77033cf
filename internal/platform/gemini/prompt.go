package gemini

import (
	"bytes"
	"fmt"
	"text/template"
)

const defaultPromptTemplate = `You are helping someone plan how to learn or accomplish: {{.Topic}}.

Suggest exactly {{.Count}} concrete, actionable tasks, ordered from first to last.
Each task needs a short title (under 60 characters) and a one-sentence description.

Respond with JSON only, in this shape:
{"tasks": [{"title": "...", "description": "..."}]}
`

var promptTemplate = template.Must(template.New("suggestions").Parse(defaultPromptTemplate))

// renderPrompt fills the suggestion prompt for topic.
func renderPrompt(topic string, count int) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Topic: topic, Count: count}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
