// Package report carries closed-session results to persistence.
// Submission is best-effort: the session never retries, and a failed
// submit must not block teardown.
package report

import (
	"context"
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// Result is the summary a session hands over exactly once when closed.
type Result struct {
	SessionID string
	Kind      game.Kind
	LessonID  string

	Score     int64
	Accuracy  float64
	TimeSpent time.Duration
	Completed bool

	AssistsUsed []game.AssistKind
	Items       []game.ItemResult
}

// Reporter accepts completed-session summaries.
type Reporter interface {
	Submit(ctx context.Context, res Result) error
}
