package session

import (
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// Summary is the closed-session snapshot handed to the reporter and
// shown on the summary screen.
type Summary struct {
	SessionID string
	LessonID  string
	Kind      game.Kind

	Score     int
	ItemCount int // items loaded, the accuracy denominator
	Accuracy  float64
	TimeSpent time.Duration
	Completed bool
	Won       bool // ladder only: correct on the final rung

	Progress    game.Progress
	AssistsUsed []game.AssistKind
	Items       []game.ItemResult
}

func (s *Session) buildSummary(reason CloseReason) *Summary {
	items := s.Results()
	progress := game.Tally(items)

	// Accuracy is over the items the session loaded, not just those
	// resolved, so an early quit counts unanswered items against it.
	// Matching is the exception: a miss retries the same pair instead
	// of consuming an item, so its engine grades pairings, not items.
	accuracy := 0.0
	switch {
	case s.match != nil:
		accuracy = s.match.Accuracy()
	case s.itemCount > 0:
		accuracy = float64(progress.Correct) / float64(s.itemCount)
	}

	won := false
	// The ladder engine tracks consumed lifelines itself: one spent on
	// a question that never resolved (walk-away, abandon) has no item
	// result to derive it from but was still used.
	assists := game.AssistsUsed(items)
	if s.ladder != nil {
		won = s.ladder.Won()
		assists = s.ladder.AssistsUsed()
	}

	return &Summary{
		SessionID:   s.ID,
		LessonID:    s.LessonID,
		Kind:        s.Kind,
		Score:       s.Score(),
		ItemCount:   s.itemCount,
		Accuracy:    accuracy,
		TimeSpent:   s.now().Sub(s.startedAt),
		Completed:   reason == Completed,
		Won:         won,
		Progress:    progress,
		AssistsUsed: assists,
		Items:       items,
	}
}
