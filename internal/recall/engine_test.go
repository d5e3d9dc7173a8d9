package recall

import (
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func testDeck() []game.Item {
	return []game.Item{
		{ID: "c1", Prompt: "What model is inspired by the brain?", Answer: "Neural Network"},
		{ID: "c2", Prompt: "HTTP status for not found?", Answer: "404"},
		{ID: "c3", Prompt: "Go's concurrency primitive?", Answer: "goroutine"},
	}
}

func TestSubmit_LenientMatch(t *testing.T) {
	e, err := New(testDeck())
	if err != nil {
		t.Fatal(err)
	}

	if got := e.Submit("  neural network "); got != game.OutcomeCorrect {
		t.Errorf("Submit = %v, want correct", got)
	}
	if e.Phase() != PhaseRevealed {
		t.Errorf("Phase = %v, want PhaseRevealed", e.Phase())
	}
	if !e.LastCorrect() {
		t.Error("expected LastCorrect true")
	}
}

func TestSubmit_WrongThenAdvance(t *testing.T) {
	e, _ := New(testDeck())

	if got := e.Submit("decision tree"); got != game.OutcomeIncorrect {
		t.Errorf("Submit = %v, want incorrect", got)
	}
	if !e.Advance() {
		t.Error("expected Advance to continue after first card")
	}
	if e.Current().ID != "c2" {
		t.Errorf("Current = %s, want c2", e.Current().ID)
	}
}

func TestOneCardDeck_CompletesAfterReveal(t *testing.T) {
	e, _ := New(testDeck()[:1])

	e.Submit("neural network")
	if e.Advance() {
		t.Error("expected Advance to report done on a one-card deck")
	}
	if !e.Completed() {
		t.Error("expected Completed")
	}
	if len(e.Results()) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(e.Results()))
	}
}

func TestNew_EmptyDeck(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty deck")
	}
}

func runFirstPass(e *Engine, answers map[string]string) {
	for e.Phase() != PhaseDone {
		card := e.Current()
		if ans, ok := answers[card.ID]; ok {
			e.Submit(ans)
		} else {
			e.Skip()
		}
		e.Advance()
	}
}

func TestReviewPass_OverwritesSkipped(t *testing.T) {
	e, _ := New(testDeck())
	runFirstPass(e, map[string]string{"c1": "neural network"}) // c2, c3 skipped

	if !e.CanReview() {
		t.Fatal("expected review pass to be available")
	}
	if err := e.StartReview(); err != nil {
		t.Fatal(err)
	}
	if !e.Reviewing() {
		t.Error("expected Reviewing true")
	}
	if e.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", e.Remaining())
	}

	// Answer c2 correctly, skip c3 again.
	e.Submit("404")
	e.Advance()
	e.Skip()
	e.Advance()

	if !e.Completed() {
		t.Fatal("expected Completed after review pass")
	}
	if e.CanReview() {
		t.Error("review pass must be offered at most once")
	}

	results := e.Results()
	if len(results) != 3 {
		t.Fatalf("len(Results) = %d, want 3 (one final result per card)", len(results))
	}
	byID := make(map[string]game.Outcome)
	for _, r := range results {
		byID[r.ItemID] = r.Outcome
	}
	if byID["c2"] != game.OutcomeCorrect {
		t.Errorf("c2 outcome = %v, want correct after review", byID["c2"])
	}
	if byID["c3"] != game.OutcomeSkipped {
		t.Errorf("c3 outcome = %v, want skipped", byID["c3"])
	}

	if e.Score() != 2 {
		t.Errorf("Score = %d, want 2", e.Score())
	}
}

func TestDeclineReview(t *testing.T) {
	e, _ := New(testDeck())
	runFirstPass(e, nil) // everything skipped

	e.DeclineReview()
	if e.CanReview() {
		t.Error("expected CanReview false after decline")
	}

	p := game.Tally(e.Results())
	if p.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", p.Skipped)
	}
	if p.Accuracy() != 0 {
		t.Errorf("Accuracy = %v, want 0 (skips count against accuracy)", p.Accuracy())
	}
}

func TestResults_ResolutionOrder(t *testing.T) {
	e, _ := New(testDeck())
	runFirstPass(e, map[string]string{"c2": "404"}) // c1, c3 skipped
	e.StartReview()
	e.Submit("brain neural network thing") // c1 resolved last
	e.Advance()
	e.Skip() // c3
	e.Advance()

	results := e.Results()
	// c1 was re-resolved during review, so it lands after c2.
	if results[0].ItemID != "c2" {
		t.Errorf("results[0] = %s, want c2", results[0].ItemID)
	}
	if results[1].ItemID != "c1" || results[1].Outcome != game.OutcomeCorrect {
		t.Errorf("results[1] = %+v, want c1 correct", results[1])
	}
}
