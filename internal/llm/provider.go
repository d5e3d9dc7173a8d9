package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over structured-output LLM backends.
// Content generation asks for JSON conforming to a schema and receives
// validated raw JSON back.
type Provider interface {
	// Generate sends one request and returns the structured response.
	// When req.Schema is set the provider uses its native structured
	// output mechanism and the returned Content is schema-valid JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// Purpose labels the request for event logging, e.g. "content-recall".
	Purpose string

	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Content generation is single-turn:
	// one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; 0 (the zero value) means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name / response-format name).
	// Kebab-case, e.g. "recall-deck".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, otherwise
	// the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
