// Package match implements the two-column pair-matching game: left and
// right decks are shuffled once at session start, the learner picks one
// card per side into a selection buffer, and a completed pairing either
// removes a matched pair from play or flashes both cards as mismatched.
// Every completed pairing counts as an attempt; accuracy is matched
// pairs over attempts.
package match

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// MatchPoints is the fixed score increment per matched pair.
const MatchPoints = 100

// MismatchFlashDelay is how long the transient mismatch flag should stay
// visible. The engine does not schedule it; the caller ticks and then
// calls ClearMismatch.
const MismatchFlashDelay = 900 * time.Millisecond

// Side distinguishes the two columns.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Pair is one matchable left/right item pair.
type Pair struct {
	ID    string
	Left  string
	Right string
}

// Card is one face on the board.
type Card struct {
	PairID string
	Text   string

	Matched    bool
	Mismatched bool // transient feedback flag
}

// Phase is the engine state between user actions.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseChecking        // buffer holds one card per side
	PhaseDone
)

// CheckResult is the outcome of resolving a full selection buffer.
type CheckResult struct {
	Matched bool
	PairID  string // set when Matched
}

// Options configures an Engine.
type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// Engine drives one matching session.
type Engine struct {
	pairs []Pair
	left  []Card
	right []Card

	// Selection buffer: at most one index per side, -1 when empty.
	selLeft  int
	selRight int

	phase        Phase
	attempts     int
	matchedPairs int
	score        int

	results   []game.ItemResult
	now       func() time.Time
	startedAt time.Time
}

// New creates an engine and shuffles both decks. The deck order is fixed
// for the rest of the session; matched cards are only ever removed, never
// reordered.
func New(pairs []Pair, opts Options) (*Engine, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("match: no pairs")
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	left := make([]Card, len(pairs))
	right := make([]Card, len(pairs))
	for i, p := range pairs {
		left[i] = Card{PairID: p.ID, Text: p.Left}
		right[i] = Card{PairID: p.ID, Text: p.Right}
	}
	rng.Shuffle(len(left), func(i, j int) { left[i], left[j] = left[j], left[i] })
	rng.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })

	return &Engine{
		pairs:     pairs,
		left:      left,
		right:     right,
		selLeft:   -1,
		selRight:  -1,
		now:       now,
		startedAt: now(),
	}, nil
}

// Phase returns the current engine phase.
func (e *Engine) Phase() Phase { return e.phase }

// Cards returns the deck for one side, in fixed shuffled order.
func (e *Engine) Cards(side Side) []Card {
	if side == SideLeft {
		return e.left
	}
	return e.right
}

// Selected returns the buffered index for a side, -1 when empty.
func (e *Engine) Selected(side Side) int {
	if side == SideLeft {
		return e.selLeft
	}
	return e.selRight
}

func (e *Engine) deck(side Side) []Card {
	if side == SideLeft {
		return e.left
	}
	return e.right
}

// Select toggles or buffers a card. Selecting the already-selected card
// deselects it; selecting a card on an occupied side replaces that side's
// selection. When the buffer holds one card per side the engine moves to
// PhaseChecking and the caller must ResolveCheck.
func (e *Engine) Select(side Side, idx int) error {
	if e.phase != PhaseSelecting {
		return fmt.Errorf("match: cannot select in phase %d", e.phase)
	}
	deck := e.deck(side)
	if idx < 0 || idx >= len(deck) {
		return fmt.Errorf("match: card %d out of range", idx)
	}
	if deck[idx].Matched {
		return fmt.Errorf("match: card %d already matched", idx)
	}

	sel := &e.selLeft
	if side == SideRight {
		sel = &e.selRight
	}
	if *sel == idx {
		*sel = -1 // toggle off
		return nil
	}
	*sel = idx // buffer or replace

	if e.selLeft >= 0 && e.selRight >= 0 {
		e.phase = PhaseChecking
	}
	return nil
}

// ResolveCheck grades a full buffer. Every resolution counts as one
// attempt regardless of correctness; the buffer always empties.
func (e *Engine) ResolveCheck() (CheckResult, error) {
	if e.phase != PhaseChecking {
		return CheckResult{}, fmt.Errorf("match: buffer not full")
	}
	l := &e.left[e.selLeft]
	r := &e.right[e.selRight]
	e.attempts++

	res := CheckResult{}
	if l.PairID == r.PairID {
		l.Matched = true
		r.Matched = true
		e.matchedPairs++
		e.score += MatchPoints
		res.Matched = true
		res.PairID = l.PairID
		e.results = append(e.results, game.ItemResult{
			ItemID:  l.PairID,
			Outcome: game.OutcomeCorrect,
			Elapsed: e.now().Sub(e.startedAt),
		})
	} else {
		l.Mismatched = true
		r.Mismatched = true
	}

	e.selLeft, e.selRight = -1, -1
	if e.matchedPairs == len(e.pairs) {
		e.phase = PhaseDone
	} else {
		e.phase = PhaseSelecting
	}
	return res, nil
}

// ClearMismatch drops the transient mismatch flags once the feedback
// delay has elapsed. Safe to call at any time.
func (e *Engine) ClearMismatch() {
	for i := range e.left {
		e.left[i].Mismatched = false
	}
	for i := range e.right {
		e.right[i].Mismatched = false
	}
}

// Completed reports whether every pair has been matched.
func (e *Engine) Completed() bool { return e.phase == PhaseDone }

// Attempts returns the number of completed left+right pairings.
func (e *Engine) Attempts() int { return e.attempts }

// MatchedPairs returns the number of pairs matched so far.
func (e *Engine) MatchedPairs() int { return e.matchedPairs }

// RemainingPairs returns the pairs still in play.
func (e *Engine) RemainingPairs() int { return len(e.pairs) - e.matchedPairs }

// Accuracy is matched pairs over attempts, 0 before the first attempt.
func (e *Engine) Accuracy() float64 {
	if e.attempts == 0 {
		return 0
	}
	return float64(e.matchedPairs) / float64(e.attempts)
}

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// Results returns one result per matched pair in match order.
func (e *Engine) Results() []game.ItemResult {
	out := make([]game.ItemResult, len(e.results))
	copy(out, e.results)
	return out
}

// Size returns the total pair count.
func (e *Engine) Size() int { return len(e.pairs) }
