package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := ResultEventData{
		SessionID:    "11111111-1111-1111-1111-111111111111",
		Kind:         "ladder",
		LessonID:     "biology-101",
		Total:        5,
		Correct:      4,
		Incorrect:    1,
		Score:        1000,
		Accuracy:     0.8,
		DurationSecs: 120,
		Completed:    true,
		AssistsUsed:  []string{"eliminate-two"},
		Items: []ItemOutcomeData{
			{ItemID: "q1", Outcome: "correct", ElapsedMs: 4000},
			{ItemID: "q2", Outcome: "correct", Assists: []string{"eliminate-two"}, ElapsedMs: 9000},
		},
	}
	if err := repo.AppendResult(ctx, data); err != nil {
		t.Fatalf("append result: %v", err)
	}

	records, err := repo.QueryResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query results: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.SessionID != data.SessionID {
		t.Errorf("session ID = %q, want %q", got.SessionID, data.SessionID)
	}
	if got.Kind != "ladder" {
		t.Errorf("kind = %q, want ladder", got.Kind)
	}
	if got.Score != 1000 {
		t.Errorf("score = %d, want 1000", got.Score)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 item outcomes, got %d", len(got.Items))
	}
	if got.Items[1].Assists[0] != "eliminate-two" {
		t.Errorf("item assist = %q, want eliminate-two", got.Items[1].Assists[0])
	}
	if got.Sequence == 0 {
		t.Error("expected non-zero sequence")
	}
}

func TestQueryResultsFilterByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, kind := range []string{"recall", "ladder", "recall"} {
		err := repo.AppendResult(ctx, ResultEventData{
			SessionID: "22222222-2222-2222-2222-222222222222",
			Kind:      kind,
			Completed: true,
		})
		if err != nil {
			t.Fatalf("append result: %v", err)
		}
	}

	records, err := repo.QueryResults(ctx, QueryOpts{Kind: "recall"})
	if err != nil {
		t.Fatalf("query results: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 recall records, got %d", len(records))
	}
}

func TestStatsByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []ResultEventData{
		{SessionID: "a", Kind: "board", Score: 500, Accuracy: 0.5, DurationSecs: 60, Completed: true},
		{SessionID: "b", Kind: "board", Score: 900, Accuracy: 0.9, DurationSecs: 90, Completed: true},
		{SessionID: "c", Kind: "board", Score: 0, Accuracy: 0.1, DurationSecs: 30, Completed: false},
	}
	for _, r := range results {
		if err := repo.AppendResult(ctx, r); err != nil {
			t.Fatalf("append result: %v", err)
		}
	}

	stats, err := repo.StatsByKind(ctx)
	if err != nil {
		t.Fatalf("stats by kind: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected stats for 1 kind, got %d", len(stats))
	}

	board := stats[0]
	if board.Sessions != 3 {
		t.Errorf("sessions = %d, want 3", board.Sessions)
	}
	if board.Completed != 2 {
		t.Errorf("completed = %d, want 2", board.Completed)
	}
	if board.BestScore != 900 {
		t.Errorf("best score = %d, want 900", board.BestScore)
	}
	if board.TotalSecs != 180 {
		t.Errorf("total secs = %d, want 180", board.TotalSecs)
	}
	wantAvg := (0.5 + 0.9 + 0.1) / 3
	if diff := board.AvgAccuracy - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg accuracy = %f, want %f", board.AvgAccuracy, wantAvg)
	}
}

func TestAppendLLMRequestAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude", Purpose: "deck-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "question-gen", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt", Purpose: "deck-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	usage, err := repo.TokenUsageByProvider(ctx)
	if err != nil {
		t.Fatalf("token usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected usage for 2 providers, got %d", len(usage))
	}

	byProvider := make(map[string]TokenUsage)
	for _, u := range usage {
		byProvider[u.Provider] = u
	}
	anth := byProvider["anthropic"]
	if anth.Requests != 2 || anth.InputTokens != 300 || anth.OutputTokens != 130 {
		t.Errorf("anthropic usage = %+v, want 2 requests, 300 in, 130 out", anth)
	}
}
