package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	After int64  // sequence > After
	Kind  string // restrict to one game kind ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ItemOutcomeData is the per-item detail recorded with a result.
type ItemOutcomeData struct {
	ItemID    string
	Outcome   string
	Assists   []string
	ElapsedMs int64
}

// ResultEventData captures the outcome of one closed session.
type ResultEventData struct {
	SessionID    string
	Kind         string
	LessonID     string
	Total        int
	Correct      int
	Incorrect    int
	Skipped      int
	Score        int64
	Accuracy     float64
	DurationSecs int
	Completed    bool
	AssistsUsed  []string
	Items        []ItemOutcomeData
}

// ResultRecord is a stored result with its event metadata.
type ResultRecord struct {
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// KindStats aggregates stored results for one game kind.
type KindStats struct {
	Kind        string
	Sessions    int
	Completed   int
	AvgAccuracy float64
	BestScore   int64
	TotalSecs   int
}

// TokenUsage aggregates LLM spend per provider.
type TokenUsage struct {
	Provider     string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendResult records the outcome of a closed session.
	AppendResult(ctx context.Context, data ResultEventData) error

	// QueryResults returns stored results, most recent first.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// StatsByKind aggregates results per game kind.
	StatsByKind(ctx context.Context) ([]KindStats, error)

	// TokenUsageByProvider aggregates LLM telemetry per provider.
	TokenUsageByProvider(ctx context.Context) ([]TokenUsage, error)
}
