package ladder

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func testQuestions(n int) []game.Item {
	qs := make([]game.Item, n)
	for i := range qs {
		qs[i] = game.Item{
			ID:      fmt.Sprintf("q%d", i+1),
			Prompt:  fmt.Sprintf("Question %d", i+1),
			Options: []string{"A", "B", "C", "D"},
			Correct: i % 4,
		}
	}
	return qs
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	lad := Default()
	e, err := New(testQuestions(lad.Len()), lad, Options{
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// answerCorrectly plays the current rung with the right answer.
func answerCorrectly(t *testing.T, e *Engine) Resolution {
	t.Helper()
	q := e.Current()
	if err := e.Select(q.Correct); err != nil {
		t.Fatal(err)
	}
	if err := e.Lock(); err != nil {
		t.Fatal(err)
	}
	res, err := e.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestWalkAway_AfterFiveRungs(t *testing.T) {
	e := testEngine(t)

	for range 5 {
		res := answerCorrectly(t, e)
		if res.Terminal {
			t.Fatal("unexpected terminal resolution")
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	winnings, err := e.WalkAway()
	if err != nil {
		t.Fatal(err)
	}
	if want := e.Ladder().Value(4); winnings != want {
		t.Errorf("winnings = %d, want %d (5th rung value)", winnings, want)
	}
	if e.Phase() != PhaseWalkedAway {
		t.Errorf("Phase = %d, want PhaseWalkedAway", e.Phase())
	}
	if e.Won() {
		t.Error("walk-away is not a win")
	}
}

func TestWalkAway_BeforeFirstRung(t *testing.T) {
	e := testEngine(t)
	winnings, err := e.WalkAway()
	if err != nil {
		t.Fatal(err)
	}
	if winnings != 0 {
		t.Errorf("winnings = %d, want 0", winnings)
	}
}

func TestLoss_BelowFirstCheckpoint(t *testing.T) {
	e := testEngine(t)

	// Complete rungs 1-2, then miss rung 3.
	for range 2 {
		answerCorrectly(t, e)
		e.Advance()
	}
	q := e.Current()
	e.Select((q.Correct + 1) % 4)
	e.Lock()
	res, err := e.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	if !res.Terminal || res.Correct {
		t.Fatalf("resolution = %+v, want terminal incorrect", res)
	}
	if want := e.Ladder().Value(1); res.Winnings != want {
		t.Errorf("winnings = %d, want %d (last completed rung)", res.Winnings, want)
	}
}

func TestLoss_OnFirstRung(t *testing.T) {
	e := testEngine(t)
	q := e.Current()
	e.Select((q.Correct + 1) % 4)
	e.Lock()
	res, _ := e.Resolve()
	if res.Winnings != 0 {
		t.Errorf("winnings = %d, want 0", res.Winnings)
	}
}

func TestLoss_DropsToCheckpoint(t *testing.T) {
	e := testEngine(t)

	// Complete rungs 1-7 (past the checkpoint at rung 5), miss rung 8.
	for range 7 {
		answerCorrectly(t, e)
		e.Advance()
	}
	q := e.Current()
	e.Select((q.Correct + 1) % 4)
	e.Lock()
	res, _ := e.Resolve()

	if want := e.Ladder().Value(4); res.Winnings != want {
		t.Errorf("winnings = %d, want checkpoint value %d", res.Winnings, want)
	}
}

func TestWin_TopRung(t *testing.T) {
	e := testEngine(t)
	for i := 0; i < e.Ladder().Len(); i++ {
		res := answerCorrectly(t, e)
		if i < e.Ladder().Len()-1 {
			if err := e.Advance(); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if !res.Terminal || !res.Won {
			t.Fatalf("final resolution = %+v, want terminal win", res)
		}
	}
	if !e.Won() {
		t.Error("expected Won")
	}
	if e.Winnings() != 1000000 {
		t.Errorf("Winnings = %d, want 1000000", e.Winnings())
	}
	if len(e.Results()) != 15 {
		t.Errorf("len(Results) = %d, want 15", len(e.Results()))
	}
}

func TestWinnings_AlwaysOnLadderOrZero(t *testing.T) {
	lad := Default()
	values := map[int]bool{0: true}
	for i := 0; i < lad.Len(); i++ {
		values[lad.Value(i)] = true
	}

	// Lose at every possible rung.
	for miss := 0; miss < lad.Len(); miss++ {
		e, _ := New(testQuestions(lad.Len()), lad, Options{Rand: rand.New(rand.NewPCG(7, 7))})
		for r := 0; r < miss; r++ {
			answerCorrectly(t, e)
			e.Advance()
		}
		q := e.Current()
		e.Select((q.Correct + 1) % 4)
		e.Lock()
		res, _ := e.Resolve()
		if !values[res.Winnings] {
			t.Errorf("loss at rung %d: winnings %d not a ladder value or 0", miss+1, res.Winnings)
		}
	}
}

func TestReselection_ReplacesPendingChoice(t *testing.T) {
	e := testEngine(t)
	e.Select(0)
	if err := e.Select(2); err != nil {
		t.Fatal(err)
	}
	if e.Selected() != 2 {
		t.Errorf("Selected = %d, want 2", e.Selected())
	}
}

func TestWalkAway_WithPendingSelection(t *testing.T) {
	e := testEngine(t)
	answerCorrectly(t, e)
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := e.Select(2); err != nil {
		t.Fatal(err)
	}

	// An unlocked selection commits to nothing.
	winnings, err := e.WalkAway()
	if err != nil {
		t.Fatalf("pending selection must not block walking away: %v", err)
	}
	if winnings != e.Ladder().Value(0) {
		t.Errorf("winnings = %d, want rung 1 value %d", winnings, e.Ladder().Value(0))
	}
}

func TestLock_IsIrreversible(t *testing.T) {
	e := testEngine(t)
	e.Select(0)
	if err := e.Lock(); err != nil {
		t.Fatal(err)
	}
	if err := e.Select(1); err == nil {
		t.Error("expected selection change after lock to fail")
	}
	if _, err := e.WalkAway(); err == nil {
		t.Error("expected walk-away after lock to fail")
	}
}

func TestLock_RequiresSelection(t *testing.T) {
	e := testEngine(t)
	if err := e.Lock(); err == nil {
		t.Error("expected Lock without a selection to fail")
	}
}

func TestNew_Validation(t *testing.T) {
	lad := Default()
	if _, err := New(nil, lad, Options{}); err == nil {
		t.Error("expected error for no questions")
	}
	if _, err := New(testQuestions(3), lad, Options{}); err == nil {
		t.Error("expected error for question/rung mismatch")
	}

	qs := testQuestions(lad.Len())
	qs[0].Options = []string{"A", "B"}
	if _, err := New(qs, lad, Options{}); err == nil {
		t.Error("expected error for wrong option count")
	}
}

func TestNewLadder_RejectsNonIncreasing(t *testing.T) {
	if _, err := NewLadder([]int{100, 100, 300}, nil); err == nil {
		t.Error("expected error for non-increasing rungs")
	}
	if _, err := NewLadder([]int{100, 200}, []int{5}); err == nil {
		t.Error("expected error for out-of-range checkpoint")
	}
}
