package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/match"
	"github.com/quizarcade/quizarcade/internal/report"
)

type stubProvider struct {
	payload *content.Payload
	err     error
}

func (p *stubProvider) Fetch(_ context.Context, _ string, _ game.Kind) (*content.Payload, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.payload, nil
}

type recordingReporter struct {
	results []report.Result
	err     error
}

func (r *recordingReporter) Submit(_ context.Context, res report.Result) error {
	r.results = append(r.results, res)
	return r.err
}

func recallPayload(n int) *content.Payload {
	cards := make([]game.Item, n)
	for i := range cards {
		cards[i] = game.Item{ID: string(rune('a' + i)), Prompt: "p", Answer: "answer"}
	}
	return &content.Payload{Kind: game.KindRecall, Cards: cards}
}

func testOptions(p content.Provider, r report.Reporter) Options {
	return Options{
		Provider: p,
		Reporter: r,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Now:      time.Now,
	}
}

func TestSessionLifecycleCompleted(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("biology-101", game.KindRecall, testOptions(&stubProvider{payload: recallPayload(2)}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("phase = %d, want Loading", s.Phase())
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %d, want Active", s.Phase())
	}
	eng := s.Recall()
	if eng == nil {
		t.Fatal("expected recall engine")
	}

	eng.Submit("answer")
	eng.Advance()
	eng.Submit("answer")
	eng.Advance()
	if !s.EngineCompleted() {
		t.Fatal("expected engine completed")
	}

	summary := s.Close(context.Background(), Completed)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %d, want Completed", s.Phase())
	}
	if !summary.Completed {
		t.Error("summary should be marked completed")
	}
	if summary.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", summary.Accuracy)
	}
	if len(summary.Items) != s.ItemCount() {
		t.Errorf("items = %d, want %d", len(summary.Items), s.ItemCount())
	}

	if len(reporter.results) != 1 {
		t.Fatalf("expected exactly 1 report, got %d", len(reporter.results))
	}
	got := reporter.results[0]
	if !got.Completed || got.SessionID != s.ID || got.LessonID != "biology-101" {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestSessionEmptyContentFails(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("empty-lesson", game.KindRecall, testOptions(&stubProvider{err: content.ErrEmptyContent}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.Load(context.Background()); !errors.Is(err, content.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if s.Phase() != PhaseFailed {
		t.Errorf("phase = %d, want Failed", s.Phase())
	}
	if s.FailReason() != FailEmptyContent {
		t.Errorf("fail reason = %d, want FailEmptyContent", s.FailReason())
	}
	if s.Recall() != nil {
		t.Error("no engine must exist after a failed load")
	}

	s.Close(context.Background(), Abandoned)
	if len(reporter.results) != 0 {
		t.Errorf("failed session must not report, got %d reports", len(reporter.results))
	}
}

func TestSessionFetchFailure(t *testing.T) {
	provider := &stubProvider{err: &content.FetchError{LessonID: "x", Kind: game.KindBoard, Err: errors.New("boom")}}
	s, err := New("x", game.KindBoard, testOptions(provider, &recordingReporter{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if s.FailReason() != FailFetch {
		t.Errorf("fail reason = %d, want FailFetch", s.FailReason())
	}
}

func TestSessionCloseTwiceReportsOnce(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("l", game.KindRecall, testOptions(&stubProvider{payload: recallPayload(1)}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Recall().Submit("answer")
	s.Recall().Advance()

	if s.Close(context.Background(), Completed) == nil {
		t.Fatal("first close should return a summary")
	}
	if s.Close(context.Background(), Completed) != nil {
		t.Fatal("second close must be a no-op")
	}
	if len(reporter.results) != 1 {
		t.Fatalf("expected exactly 1 report, got %d", len(reporter.results))
	}
	if !s.Closed() {
		t.Error("session should report closed")
	}
}

func TestSessionAbandonedWithNoResultsDoesNotReport(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("l", game.KindRecall, testOptions(&stubProvider{payload: recallPayload(3)}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Close(context.Background(), Abandoned)
	if s.Phase() != PhaseAbandoned {
		t.Errorf("phase = %d, want Abandoned", s.Phase())
	}
	if len(reporter.results) != 0 {
		t.Errorf("no items resolved, expected no report, got %d", len(reporter.results))
	}
}

func TestSessionAbandonedWithPartialResultsReports(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("l", game.KindRecall, testOptions(&stubProvider{payload: recallPayload(3)}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Recall().Submit("answer")
	s.Recall().Advance()

	summary := s.Close(context.Background(), Abandoned)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Completed {
		t.Error("abandoned summary must not be marked completed")
	}
	if len(reporter.results) != 1 {
		t.Fatalf("expected 1 best-effort report, got %d", len(reporter.results))
	}
	if reporter.results[0].Completed {
		t.Error("report must carry completed=false")
	}
	// One of three items resolved correctly.
	want := 1.0 / 3.0
	if diff := summary.Accuracy - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("accuracy = %f, want %f", summary.Accuracy, want)
	}
}

func TestSessionMatchAccuracyCountsAttempts(t *testing.T) {
	pairs := []match.Pair{
		{ID: "1", Left: "la", Right: "ra"},
		{ID: "2", Left: "lb", Right: "rb"},
	}
	reporter := &recordingReporter{}
	s, err := New("l", game.KindMatch, testOptions(&stubProvider{payload: &content.Payload{Kind: game.KindMatch, Pairs: pairs}}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	eng := s.Match()

	mustSelect := func(side match.Side, idx int) {
		t.Helper()
		if err := eng.Select(side, idx); err != nil {
			t.Fatalf("select: %v", err)
		}
	}
	rightOf := func(pairID string) int {
		t.Helper()
		for i, c := range eng.Cards(match.SideRight) {
			if c.PairID == pairID {
				return i
			}
		}
		t.Fatalf("no right card for pair %s", pairID)
		return -1
	}

	// One deliberate mismatch, then both pairs matched: 3 attempts.
	first := eng.Cards(match.SideLeft)[0].PairID
	wrong := 1 - rightOf(first)
	mustSelect(match.SideLeft, 0)
	mustSelect(match.SideRight, wrong)
	if res, err := eng.ResolveCheck(); err != nil || res.Matched {
		t.Fatalf("expected a mismatch, got %+v err %v", res, err)
	}
	eng.ClearMismatch()
	for li, c := range eng.Cards(match.SideLeft) {
		mustSelect(match.SideLeft, li)
		mustSelect(match.SideRight, rightOf(c.PairID))
		if res, err := eng.ResolveCheck(); err != nil || !res.Matched {
			t.Fatalf("expected a match, got %+v err %v", res, err)
		}
	}
	if !s.EngineCompleted() {
		t.Fatal("expected engine completed")
	}

	// Matching grades pairings, not loaded items: 2 matches over 3
	// attempts, never the trivial correct/itemCount ratio.
	summary := s.Close(context.Background(), Completed)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	want := 2.0 / 3.0
	if diff := summary.Accuracy - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("accuracy = %f, want %f", summary.Accuracy, want)
	}
	if len(reporter.results) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reporter.results))
	}
	if diff := reporter.results[0].Accuracy - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("reported accuracy = %f, want %f", reporter.results[0].Accuracy, want)
	}
}

func TestSessionLadderAssistReportedAfterWalkAway(t *testing.T) {
	questions := make([]game.Item, 5)
	for i := range questions {
		questions[i] = game.Item{
			ID:      string(rune('a' + i)),
			Prompt:  "q",
			Options: []string{"w", "x", "y", "z"},
			Correct: 0,
		}
	}
	reporter := &recordingReporter{}
	s, err := New("l", game.KindLadder, testOptions(&stubProvider{payload: &content.Payload{Kind: game.KindLadder, Questions: questions}}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Clear rung 1, burn a lifeline on the open rung 2, then walk.
	eng := s.Ladder()
	if err := eng.Select(0); err != nil {
		t.Fatal(err)
	}
	if err := eng.Lock(); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Resolve(); err != nil {
		t.Fatal(err)
	}
	if err := eng.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.UseAssist(game.AssistPollAudience); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.WalkAway(); err != nil {
		t.Fatal(err)
	}

	summary := s.Close(context.Background(), Abandoned)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if len(summary.AssistsUsed) != 1 || summary.AssistsUsed[0] != game.AssistPollAudience {
		t.Errorf("summary assists = %v, want [poll-audience]", summary.AssistsUsed)
	}
	if len(reporter.results) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reporter.results))
	}
	if got := reporter.results[0].AssistsUsed; len(got) != 1 || got[0] != game.AssistPollAudience {
		t.Errorf("reported assists = %v, want [poll-audience]", got)
	}
}

func TestSessionReportFailureDoesNotBlockClose(t *testing.T) {
	reporter := &recordingReporter{err: errors.New("db gone")}
	s, err := New("l", game.KindRecall, testOptions(&stubProvider{payload: recallPayload(1)}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	s.Recall().Submit("answer")
	s.Recall().Advance()

	if s.Close(context.Background(), Completed) == nil {
		t.Fatal("close must succeed despite report failure")
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %d, want Completed", s.Phase())
	}
}

// waitingProvider blocks until its fetch context is cancelled.
type waitingProvider struct{}

func (waitingProvider) Fetch(ctx context.Context, _ string, _ game.Kind) (*content.Payload, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSessionCloseCancelsPendingLoad(t *testing.T) {
	reporter := &recordingReporter{}
	s, err := New("l", game.KindRecall, testOptions(waitingProvider{}, reporter))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	fetch, err := s.BeginLoad(context.Background())
	if err != nil {
		t.Fatalf("begin load: %v", err)
	}

	if s.Close(context.Background(), Abandoned) != nil {
		t.Fatal("closing a loading session must not produce a summary")
	}
	if s.Phase() != PhaseAbandoned {
		t.Errorf("phase = %d, want Abandoned", s.Phase())
	}

	// Close cancelled the fetch context, so the fetch returns instead
	// of hanging.
	payload, fetchErr := fetch()
	if !errors.Is(fetchErr, context.Canceled) {
		t.Fatalf("fetch error = %v, want context.Canceled", fetchErr)
	}

	// The late outcome must not resurrect the closed session.
	s.ApplyLoad(payload, fetchErr)
	if s.Phase() != PhaseAbandoned {
		t.Errorf("phase after late apply = %d, want Abandoned", s.Phase())
	}
	if s.Recall() != nil {
		t.Error("no engine must exist on a closed session")
	}
	if len(reporter.results) != 0 {
		t.Errorf("cancelled load must not report, got %d", len(reporter.results))
	}
}

func TestSessionBeginLoadOncePerSession(t *testing.T) {
	s, err := New("l", game.KindRecall, testOptions(waitingProvider{}, &recordingReporter{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.BeginLoad(context.Background()); err != nil {
		t.Fatalf("begin load: %v", err)
	}
	if _, err := s.BeginLoad(context.Background()); err == nil {
		t.Fatal("second BeginLoad while one is in flight must fail")
	}
}

func TestSessionLadderFitsShortQuestionList(t *testing.T) {
	questions := make([]game.Item, 5)
	for i := range questions {
		questions[i] = game.Item{
			ID:      string(rune('a' + i)),
			Prompt:  "q",
			Options: []string{"w", "x", "y", "z"},
			Correct: 0,
		}
	}
	payload := &content.Payload{Kind: game.KindLadder, Questions: questions}

	s, err := New("l", game.KindLadder, testOptions(&stubProvider{payload: payload}, &recordingReporter{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	eng := s.Ladder()
	if eng == nil {
		t.Fatal("expected ladder engine")
	}
	if eng.Ladder().Len() != 5 {
		t.Errorf("ladder length = %d, want 5", eng.Ladder().Len())
	}
	if !eng.Ladder().IsCheckpoint(4) {
		t.Error("the first default checkpoint fits a 5-rung ladder and must be kept")
	}
}

func TestSessionWrongKindEngineAccessorsNil(t *testing.T) {
	pairs := []match.Pair{{ID: "1", Left: "l", Right: "r"}}
	payload := &content.Payload{Kind: game.KindMatch, Pairs: pairs}

	s, err := New("l", game.KindMatch, testOptions(&stubProvider{payload: payload}, &recordingReporter{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if s.Match() == nil {
		t.Error("expected match engine")
	}
	if s.Recall() != nil || s.Ladder() != nil || s.Board() != nil {
		t.Error("other engine accessors must be nil")
	}
}

func TestSessionBoardPayload(t *testing.T) {
	payload := &content.Payload{
		Kind: game.KindBoard,
		Categories: []board.Category{{
			Name: "Rivers",
			Cells: []board.Cell{
				{Item: game.Item{ID: "c1", Prompt: "Longest river", Answer: "Nile"}, Value: 100},
			},
		}},
	}

	s, err := New("l", game.KindBoard, testOptions(&stubProvider{payload: payload}, &recordingReporter{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ItemCount() != 1 {
		t.Errorf("item count = %d, want 1", s.ItemCount())
	}
}
