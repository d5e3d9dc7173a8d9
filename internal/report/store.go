package report

import (
	"context"
	"fmt"

	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/store"
)

// StoreReporter persists results as append-only store events.
type StoreReporter struct {
	repo store.EventRepo
}

// NewStoreReporter creates a Reporter backed by the event store.
func NewStoreReporter(repo store.EventRepo) *StoreReporter {
	return &StoreReporter{repo: repo}
}

func (r *StoreReporter) Submit(ctx context.Context, res Result) error {
	tally := game.Tally(res.Items)

	var assists []string
	for _, a := range res.AssistsUsed {
		assists = append(assists, string(a))
	}

	items := make([]store.ItemOutcomeData, 0, len(res.Items))
	for _, it := range res.Items {
		var itemAssists []string
		for _, a := range it.Assists {
			itemAssists = append(itemAssists, string(a))
		}
		items = append(items, store.ItemOutcomeData{
			ItemID:    it.ItemID,
			Outcome:   string(it.Outcome),
			Assists:   itemAssists,
			ElapsedMs: it.Elapsed.Milliseconds(),
		})
	}

	err := r.repo.AppendResult(ctx, store.ResultEventData{
		SessionID:    res.SessionID,
		Kind:         string(res.Kind),
		LessonID:     res.LessonID,
		Total:        tally.Total,
		Correct:      tally.Correct,
		Incorrect:    tally.Incorrect,
		Skipped:      tally.Skipped,
		Score:        res.Score,
		Accuracy:     res.Accuracy,
		DurationSecs: int(res.TimeSpent.Seconds()),
		Completed:    res.Completed,
		AssistsUsed:  assists,
		Items:        items,
	})
	if err != nil {
		return fmt.Errorf("persist result: %w", err)
	}
	return nil
}
