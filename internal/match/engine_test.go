package match

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func testPairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{
			ID:    fmt.Sprintf("p%d", i+1),
			Left:  fmt.Sprintf("term %d", i+1),
			Right: fmt.Sprintf("definition %d", i+1),
		}
	}
	return pairs
}

func testEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e, err := New(testPairs(n), Options{Rand: rand.New(rand.NewPCG(3, 9))})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// indexOf finds the deck index of a pair ID on one side.
func indexOf(e *Engine, side Side, pairID string) int {
	for i, c := range e.Cards(side) {
		if c.PairID == pairID {
			return i
		}
	}
	return -1
}

func TestNew_EmptyPairs(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("expected error for no pairs")
	}
}

func TestShuffle_KeepsAllCards(t *testing.T) {
	e := testEngine(t, 5)
	for _, side := range []Side{SideLeft, SideRight} {
		if len(e.Cards(side)) != 5 {
			t.Fatalf("side %d has %d cards, want 5", side, len(e.Cards(side)))
		}
		for i := 1; i <= 5; i++ {
			if indexOf(e, side, fmt.Sprintf("p%d", i)) < 0 {
				t.Errorf("side %d missing pair p%d", side, i)
			}
		}
	}
}

func TestSelect_ToggleDeselects(t *testing.T) {
	e := testEngine(t, 3)
	if err := e.Select(SideLeft, 1); err != nil {
		t.Fatal(err)
	}
	if e.Selected(SideLeft) != 1 {
		t.Fatalf("Selected = %d, want 1", e.Selected(SideLeft))
	}
	e.Select(SideLeft, 1)
	if e.Selected(SideLeft) != -1 {
		t.Errorf("Selected = %d after toggle, want -1", e.Selected(SideLeft))
	}
}

func TestSelect_ReplacesSameSide(t *testing.T) {
	e := testEngine(t, 3)
	e.Select(SideLeft, 0)
	if err := e.Select(SideLeft, 2); err != nil {
		t.Fatal(err)
	}
	if e.Selected(SideLeft) != 2 {
		t.Errorf("Selected = %d, want 2 (replaced, not queued)", e.Selected(SideLeft))
	}
	if e.Phase() != PhaseSelecting {
		t.Errorf("Phase = %d, want PhaseSelecting with one side empty", e.Phase())
	}
}

func TestFullBuffer_EntersChecking(t *testing.T) {
	e := testEngine(t, 3)
	e.Select(SideLeft, 0)
	e.Select(SideRight, 0)
	if e.Phase() != PhaseChecking {
		t.Fatalf("Phase = %d, want PhaseChecking", e.Phase())
	}
	if err := e.Select(SideLeft, 1); err == nil {
		t.Error("expected selection during checking to fail")
	}
}

func TestResolveCheck_Match(t *testing.T) {
	e := testEngine(t, 3)
	e.Select(SideLeft, indexOf(e, SideLeft, "p1"))
	e.Select(SideRight, indexOf(e, SideRight, "p1"))
	res, err := e.ResolveCheck()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Matched || res.PairID != "p1" {
		t.Errorf("result = %+v, want match of p1", res)
	}
	if e.Score() != MatchPoints {
		t.Errorf("Score = %d, want %d", e.Score(), MatchPoints)
	}
	if e.Selected(SideLeft) != -1 || e.Selected(SideRight) != -1 {
		t.Error("buffer must empty after a resolution")
	}

	// Matched cards leave play.
	idx := indexOf(e, SideLeft, "p1")
	if err := e.Select(SideLeft, idx); err == nil {
		t.Error("expected selecting a matched card to fail")
	}
}

func TestResolveCheck_MismatchFlagsAndClears(t *testing.T) {
	e := testEngine(t, 3)
	li := indexOf(e, SideLeft, "p1")
	ri := indexOf(e, SideRight, "p2")
	e.Select(SideLeft, li)
	e.Select(SideRight, ri)
	res, _ := e.ResolveCheck()
	if res.Matched {
		t.Fatal("expected a mismatch")
	}
	if !e.Cards(SideLeft)[li].Mismatched || !e.Cards(SideRight)[ri].Mismatched {
		t.Error("expected transient mismatch flags on both cards")
	}
	if e.Attempts() != 1 || e.MatchedPairs() != 0 {
		t.Errorf("attempts=%d matched=%d, want 1/0", e.Attempts(), e.MatchedPairs())
	}

	e.ClearMismatch()
	if e.Cards(SideLeft)[li].Mismatched || e.Cards(SideRight)[ri].Mismatched {
		t.Error("expected mismatch flags cleared")
	}
}

func TestFullGame_AccuracyAndInvariants(t *testing.T) {
	// 5 pairs, 7 attempts, 5 correct -> accuracy 5/7.
	e := testEngine(t, 5)

	misses := [][2]string{{"p1", "p2"}, {"p3", "p4"}}
	for _, m := range misses {
		e.Select(SideLeft, indexOf(e, SideLeft, m[0]))
		e.Select(SideRight, indexOf(e, SideRight, m[1]))
		e.ResolveCheck()
		e.ClearMismatch()
	}
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("p%d", i)
		e.Select(SideLeft, indexOf(e, SideLeft, id))
		e.Select(SideRight, indexOf(e, SideRight, id))
		e.ResolveCheck()

		if got := e.MatchedPairs() + e.RemainingPairs(); got != e.Size() {
			t.Fatalf("matched+remaining = %d, want %d", got, e.Size())
		}
		if e.Attempts() < e.MatchedPairs() {
			t.Fatal("attempts must never trail matched pairs")
		}
	}

	if !e.Completed() {
		t.Fatal("expected Completed")
	}
	if e.Attempts() != 7 {
		t.Errorf("Attempts = %d, want 7", e.Attempts())
	}
	want := 5.0 / 7.0
	if got := e.Accuracy(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Accuracy = %v, want %v", got, want)
	}
	if len(e.Results()) != 5 {
		t.Errorf("len(Results) = %d, want 5", len(e.Results()))
	}
}
