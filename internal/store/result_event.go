package store

import (
	"context"
	"fmt"

	"github.com/quizarcade/quizarcade/ent"
	"github.com/quizarcade/quizarcade/ent/resultevent"
	entschema "github.com/quizarcade/quizarcade/ent/schema"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var items []entschema.ItemOutcomeRecord
	for _, it := range data.Items {
		items = append(items, entschema.ItemOutcomeRecord{
			ItemID:    it.ItemID,
			Outcome:   it.Outcome,
			Assists:   it.Assists,
			ElapsedMs: it.ElapsedMs,
		})
	}

	builder := r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetLessonID(data.LessonID).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetIncorrect(data.Incorrect).
		SetSkipped(data.Skipped).
		SetScore(data.Score).
		SetAccuracy(data.Accuracy).
		SetDurationSecs(data.DurationSecs).
		SetCompleted(data.Completed)

	if len(data.AssistsUsed) > 0 {
		builder = builder.SetAssistsUsed(data.AssistsUsed)
	}
	if len(items) > 0 {
		builder = builder.SetItems(items)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	query := r.client.ResultEvent.Query().
		Order(ent.Desc(resultevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(resultevent.SequenceGT(opts.After))
	}
	if opts.Kind != "" {
		query = query.Where(resultevent.Kind(opts.Kind))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	records := make([]ResultRecord, len(events))
	for i, e := range events {
		var items []ItemOutcomeData
		for _, it := range e.Items {
			items = append(items, ItemOutcomeData{
				ItemID:    it.ItemID,
				Outcome:   it.Outcome,
				Assists:   it.Assists,
				ElapsedMs: it.ElapsedMs,
			})
		}
		records[i] = ResultRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResultEventData: ResultEventData{
				SessionID:    e.SessionID,
				Kind:         e.Kind,
				LessonID:     e.LessonID,
				Total:        e.Total,
				Correct:      e.Correct,
				Incorrect:    e.Incorrect,
				Skipped:      e.Skipped,
				Score:        e.Score,
				Accuracy:     e.Accuracy,
				DurationSecs: e.DurationSecs,
				Completed:    e.Completed,
				AssistsUsed:  e.AssistsUsed,
				Items:        items,
			},
		}
	}
	return records, nil
}

func (r *eventRepo) StatsByKind(ctx context.Context) ([]KindStats, error) {
	events, err := r.client.ResultEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	byKind := make(map[string]*KindStats)
	var order []string
	accSums := make(map[string]float64)

	for _, e := range events {
		stats, ok := byKind[e.Kind]
		if !ok {
			stats = &KindStats{Kind: e.Kind}
			byKind[e.Kind] = stats
			order = append(order, e.Kind)
		}
		stats.Sessions++
		if e.Completed {
			stats.Completed++
		}
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
		stats.TotalSecs += e.DurationSecs
		accSums[e.Kind] += e.Accuracy
	}

	out := make([]KindStats, 0, len(order))
	for _, k := range order {
		stats := byKind[k]
		stats.AvgAccuracy = accSums[k] / float64(stats.Sessions)
		out = append(out, *stats)
	}
	return out, nil
}
