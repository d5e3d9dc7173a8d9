package content

import (
	"context"
	"errors"

	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/llm"
)

// Generator implements Provider by generating payloads with an LLM.
// The schema constrains the response shape; Decode applies the same
// defaults as the file path, so both providers hand the session
// identical payloads.
type Generator struct {
	provider llm.Provider
	cfg      GenConfig
}

// NewGenerator creates a Generator over the given provider.
func NewGenerator(provider llm.Provider, cfg GenConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

func (g *Generator) Fetch(ctx context.Context, lessonID string, kind game.Kind) (*Payload, error) {
	schema := schemaFor(kind)
	if schema == nil {
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: errUnknownKind}
	}

	req := llm.Request{
		Purpose: purposeFor(kind),
		System:  systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(lessonID, kind, g.cfg)},
		},
		Schema:      schema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: err}
	}

	payload, err := Decode(kind, resp.Content)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			return nil, ErrEmptyContent
		}
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: err}
	}
	return payload, nil
}
