package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func testGrid() []Category {
	mk := func(cat string, i, value int, wagered bool) Cell {
		return Cell{
			Item: game.Item{
				ID:     fmt.Sprintf("%s-%d", cat, i),
				Prompt: fmt.Sprintf("Clue %s %d", cat, i),
				Answer: fmt.Sprintf("answer %s%d", cat, i),
			},
			Value:   value,
			Wagered: wagered,
		}
	}
	return []Category{
		{Name: "History", Cells: []Cell{mk("hist", 1, 100, false), mk("hist", 2, 200, false)}},
		{Name: "Science", Cells: []Cell{mk("sci", 1, 100, false), mk("sci", 2, 500, true)}},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testGrid(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNew_EmptyGrid(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("expected error for empty grid")
	}
}

func TestAnswer_CorrectAddsValue(t *testing.T) {
	e := testEngine(t)
	if err := e.Select(0, 0); err != nil {
		t.Fatal(err)
	}
	res, err := e.Answer("answer hist1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct || res.Delta != 100 || res.Score != 100 {
		t.Errorf("resolution = %+v, want correct +100", res)
	}
	e.Continue()
	if e.Phase() != PhasePicking {
		t.Errorf("Phase = %d, want PhasePicking", e.Phase())
	}
}

func TestAnswer_PlainMissDoesNotPenalize(t *testing.T) {
	e := testEngine(t)
	e.Select(0, 0)
	res, _ := e.Answer("completely wrong")
	if res.Correct || res.Delta != 0 || res.Score != 0 {
		t.Errorf("resolution = %+v, want incorrect with no penalty", res)
	}
}

func TestConsumedCell_CannotBeReselected(t *testing.T) {
	e := testEngine(t)
	e.Select(0, 0)
	e.Answer("x")
	e.Continue()
	if err := e.Select(0, 0); err == nil {
		t.Error("expected reselecting a consumed cell to fail")
	}
	c := e.Categories()[0].Cells[0]
	if !c.Consumed || c.WasCorrect {
		t.Errorf("cell = %+v, want consumed with wasCorrect=false", c)
	}
}

func TestWager_Bounds(t *testing.T) {
	e := testEngine(t)

	// Score 200 first.
	e.Select(0, 1)
	e.Answer("answer hist2")
	e.Continue()

	if err := e.Select(1, 1); err != nil {
		t.Fatal(err)
	}
	if e.Phase() != PhaseAwaitingWager {
		t.Fatalf("Phase = %d, want PhaseAwaitingWager", e.Phase())
	}

	min, max := e.WagerBounds()
	if min != DefaultMinWager || max != DefaultWagerFloor {
		t.Errorf("bounds = [%d, %d], want [%d, %d] (floor above score)", min, max, DefaultMinWager, DefaultWagerFloor)
	}

	var invalid *InvalidWagerError
	if err := e.PlaceWager(max + 1); !errors.As(err, &invalid) {
		t.Fatalf("PlaceWager(max+1) = %v, want InvalidWagerError", err)
	}
	if err := e.PlaceWager(min - 1); !errors.As(err, &invalid) {
		t.Fatalf("PlaceWager(min-1) = %v, want InvalidWagerError", err)
	}
	// Session stays in place awaiting a corrected wager.
	if e.Phase() != PhaseAwaitingWager {
		t.Errorf("Phase = %d after rejected wager, want PhaseAwaitingWager", e.Phase())
	}
	if err := e.PlaceWager(300); err != nil {
		t.Fatal(err)
	}
	if e.Phase() != PhaseClue {
		t.Errorf("Phase = %d, want PhaseClue", e.Phase())
	}
}

func TestWageredLoss_SubtractsWagerClampedAtZero(t *testing.T) {
	e := testEngine(t)

	// Score 200, then wager 300 and miss: 200 - 300 clamps to 0.
	e.Select(0, 1)
	e.Answer("answer hist2")
	e.Continue()

	e.Select(1, 1)
	if err := e.PlaceWager(300); err != nil {
		t.Fatal(err)
	}
	res, _ := e.Answer("wrong")
	if res.Correct {
		t.Fatal("expected a miss")
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0 (clamped)", res.Score)
	}
	if res.Delta != -200 {
		t.Errorf("delta = %d, want -200 (clamped from -300)", res.Delta)
	}
	if e.Score() < 0 {
		t.Error("score must never be negative")
	}
}

func TestWageredWin_AddsWagerNotValue(t *testing.T) {
	e := testEngine(t)
	e.Select(1, 1)
	e.PlaceWager(DefaultMinWager)
	res, _ := e.Answer("answer sci2")
	if !res.Correct || res.Delta != DefaultMinWager {
		t.Errorf("resolution = %+v, want +%d (the wager, not the cell value)", res, DefaultMinWager)
	}
}

func TestCompletion_WhenEveryCellConsumed(t *testing.T) {
	e := testEngine(t)

	coords := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range coords {
		if err := e.Select(c[0], c[1]); err != nil {
			t.Fatal(err)
		}
		if e.Phase() == PhaseAwaitingWager {
			if err := e.PlaceWager(DefaultMinWager); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := e.Answer("answer"); err != nil {
			t.Fatal(err)
		}
		e.Continue()

		if i < len(coords)-1 {
			if e.Completed() {
				t.Fatalf("completed after %d cells, want %d", i+1, len(coords))
			}
		}
	}

	if !e.Completed() {
		t.Error("expected Completed once every cell is consumed")
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", e.Remaining())
	}
	if len(e.Results()) != e.Size() {
		t.Errorf("len(Results) = %d, want %d", len(e.Results()), e.Size())
	}
}

func TestAnswer_KeywordLeniency(t *testing.T) {
	grid := []Category{{Name: "CS", Cells: []Cell{{
		Item:  game.Item{ID: "cs-1", Prompt: "Brain-inspired model", Answer: "a neural network"},
		Value: 100,
	}}}}
	e, _ := New(grid, Options{})
	e.Select(0, 0)
	res, _ := e.Answer("some kind of network?")
	if !res.Correct {
		t.Error("expected shared keyword 'network' to grade correct")
	}
}
