package store

import (
	"context"
	"fmt"

	"github.com/quizarcade/quizarcade/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) TokenUsageByProvider(ctx context.Context) ([]TokenUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byProvider := make(map[string]*TokenUsage)
	var order []string
	for _, e := range events {
		usage, ok := byProvider[e.Provider]
		if !ok {
			usage = &TokenUsage{Provider: e.Provider}
			byProvider[e.Provider] = usage
			order = append(order, e.Provider)
		}
		usage.Requests++
		usage.InputTokens += e.InputTokens
		usage.OutputTokens += e.OutputTokens
	}

	out := make([]TokenUsage, 0, len(order))
	for _, p := range order {
		out = append(out, *byProvider[p])
	}
	return out, nil
}
