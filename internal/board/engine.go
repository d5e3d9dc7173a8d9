// Package board implements the category/value grid quiz: the learner
// picks cells off a fixed board, answers free-text clues graded by
// lenient keyword matching, and may hit wagered cells that stake a
// player-chosen amount instead of the printed value. The session
// completes exactly when every cell has been consumed.
package board

import (
	"fmt"
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// Default wager bounds. The ceiling is the larger of the current score
// and the floor, so an early wagered cell is still worth playing.
const (
	DefaultMinWager   = 5
	DefaultWagerFloor = 1000
)

// Cell is one clue on the board.
type Cell struct {
	Item    game.Item
	Value   int
	Wagered bool

	Consumed   bool
	WasCorrect bool
}

// Category is a named column of cells.
type Category struct {
	Name  string
	Cells []Cell
}

// Phase is the engine state between user actions.
type Phase int

const (
	PhasePicking       Phase = iota // choosing the next cell
	PhaseAwaitingWager              // wagered cell selected, wager pending
	PhaseClue                       // clue shown, awaiting an answer
	PhaseRevealed                   // graded, showing feedback
	PhaseDone                       // every cell consumed
)

// InvalidWagerError reports a wager outside the allowed range. The
// session stays in place awaiting a corrected wager.
type InvalidWagerError struct {
	Amount, Min, Max int
}

func (e *InvalidWagerError) Error() string {
	return fmt.Sprintf("board: wager %d outside [%d, %d]", e.Amount, e.Min, e.Max)
}

// Resolution is the outcome of grading one clue.
type Resolution struct {
	Correct bool
	Delta   int // applied score change (negative on a wagered miss)
	Score   int // score after applying Delta
}

// Options configures an Engine.
type Options struct {
	MinWager   int
	WagerFloor int
	Now        func() time.Time
}

// Engine drives one board session.
type Engine struct {
	categories []Category
	total      int // cell count
	consumed   int

	phase Phase
	cat   int // selected cell coordinates
	cell  int
	wager int // accepted wager for the pending cell

	score       int
	lastCorrect bool
	results     []game.ItemResult

	minWager   int
	wagerFloor int
	now        func() time.Time
	shownAt    time.Time
}

// New creates an engine over a non-empty grid.
func New(categories []Category, opts Options) (*Engine, error) {
	total := 0
	for _, c := range categories {
		total += len(c.Cells)
	}
	if total == 0 {
		return nil, fmt.Errorf("board: empty grid")
	}

	minWager := opts.MinWager
	if minWager <= 0 {
		minWager = DefaultMinWager
	}
	floor := opts.WagerFloor
	if floor <= 0 {
		floor = DefaultWagerFloor
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		categories: categories,
		total:      total,
		minWager:   minWager,
		wagerFloor: floor,
		now:        now,
	}, nil
}

// Phase returns the current engine phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the running score. Never negative.
func (e *Engine) Score() int { return e.score }

// Categories exposes the grid for rendering.
func (e *Engine) Categories() []Category { return e.categories }

// Current returns the cell in play, nil while picking or done.
func (e *Engine) Current() *Cell {
	if e.phase == PhasePicking || e.phase == PhaseDone {
		return nil
	}
	return &e.categories[e.cat].Cells[e.cell]
}

// Select puts a cell in play. Consumed cells can never be reselected.
// A wagered cell requires a wager before its clue is shown.
func (e *Engine) Select(cat, cell int) error {
	if e.phase != PhasePicking {
		return fmt.Errorf("board: cannot select in phase %d", e.phase)
	}
	if cat < 0 || cat >= len(e.categories) || cell < 0 || cell >= len(e.categories[cat].Cells) {
		return fmt.Errorf("board: cell %d/%d out of range", cat, cell)
	}
	c := &e.categories[cat].Cells[cell]
	if c.Consumed {
		return fmt.Errorf("board: cell %d/%d already consumed", cat, cell)
	}

	e.cat, e.cell = cat, cell
	e.wager = 0
	if c.Wagered {
		e.phase = PhaseAwaitingWager
		return nil
	}
	e.phase = PhaseClue
	e.shownAt = e.now()
	return nil
}

// WagerBounds returns the allowed wager range for the pending cell.
func (e *Engine) WagerBounds() (min, max int) {
	max = e.score
	if max < e.wagerFloor {
		max = e.wagerFloor
	}
	return e.minWager, max
}

// PlaceWager accepts the stake for a wagered cell and reveals its clue.
// Out-of-range wagers are rejected with *InvalidWagerError and must be
// corrected before play proceeds.
func (e *Engine) PlaceWager(amount int) error {
	if e.phase != PhaseAwaitingWager {
		return fmt.Errorf("board: no wager pending")
	}
	min, max := e.WagerBounds()
	if amount < min || amount > max {
		return &InvalidWagerError{Amount: amount, Min: min, Max: max}
	}
	e.wager = amount
	e.phase = PhaseClue
	e.shownAt = e.now()
	return nil
}

// Answer grades the free-text response for the cell in play, applies the
// score delta, consumes the cell and moves to PhaseRevealed. Completion
// is checked on the following Continue.
func (e *Engine) Answer(response string) (Resolution, error) {
	if e.phase != PhaseClue {
		return Resolution{}, fmt.Errorf("board: no clue in play")
	}
	c := &e.categories[e.cat].Cells[e.cell]
	correct := game.MatchKeyword(response, c.Item.Answer)

	stake := c.Value
	if c.Wagered {
		stake = e.wager
	}

	delta := 0
	switch {
	case correct:
		delta = stake
	case c.Wagered:
		// A wagered miss costs the wager, clamped so the score never
		// goes negative. A plain miss costs nothing.
		delta = -stake
		if e.score+delta < 0 {
			delta = -e.score
		}
	}
	e.score += delta

	c.Consumed = true
	c.WasCorrect = correct
	e.consumed++
	e.lastCorrect = correct

	outcome := game.OutcomeIncorrect
	if correct {
		outcome = game.OutcomeCorrect
	}
	e.results = append(e.results, game.ItemResult{
		ItemID:  c.Item.ID,
		Outcome: outcome,
		Elapsed: e.now().Sub(e.shownAt),
	})

	e.phase = PhaseRevealed
	return Resolution{Correct: correct, Delta: delta, Score: e.score}, nil
}

// Continue leaves the feedback view: back to picking, or PhaseDone once
// every cell is consumed.
func (e *Engine) Continue() {
	if e.phase != PhaseRevealed {
		return
	}
	if e.consumed == e.total {
		e.phase = PhaseDone
		return
	}
	e.phase = PhasePicking
}

// LastCorrect reports whether the most recent clue was answered right.
func (e *Engine) LastCorrect() bool { return e.lastCorrect }

// Completed reports whether every cell has been consumed and the final
// feedback was dismissed.
func (e *Engine) Completed() bool { return e.phase == PhaseDone }

// Remaining returns the number of unconsumed cells.
func (e *Engine) Remaining() int { return e.total - e.consumed }

// Size returns the total cell count.
func (e *Engine) Size() int { return e.total }

// Results returns one result per consumed cell in consumption order.
func (e *Engine) Results() []game.ItemResult {
	out := make([]game.ItemResult, len(e.results))
	copy(out, e.results)
	return out
}
