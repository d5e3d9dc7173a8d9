package llm

import (
	"context"
	"log"
	"time"

	"github.com/quizarcade/quizarcade/internal/store"
)

// loggingProvider records every request as an LLMRequestEvent.
type loggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{inner: p, repo: repo}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   req.Purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Telemetry never fails the request.
	if logErr := l.repo.AppendLLMRequest(ctx, data); logErr != nil {
		log.Printf("warning: record LLM request event: %v", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }
