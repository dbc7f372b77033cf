package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
	Count int
}

// ResponseSchema represents the expected JSON document returned by the model
type ResponseSchema struct {
	Tasks []TaskSchema `json:"tasks"`
}

// TaskSchema represents a single suggested task in the model's response
type TaskSchema struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
