// Package recall implements the flashcard free-recall game: each card is
// prompted, graded leniently against the reference answer (or skipped),
// revealed, and advanced. After the first pass the learner may replay the
// skipped cards once; those outcomes replace the original Skipped results.
package recall

import (
	"fmt"
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// Phase is the per-card state of the engine.
type Phase int

const (
	PhasePrompted Phase = iota // waiting for an answer or a skip
	PhaseRevealed              // showing the reference answer
	PhaseDone                  // every card resolved
)

// Engine drives one flashcard session. All transitions happen on the
// caller's goroutine; the engine never schedules its own timers.
type Engine struct {
	deck  []game.Item
	queue []int // deck indices left to serve in the current pass
	pos   int   // index into queue of the current card

	phase     Phase
	reviewing bool // second pass over skipped cards
	reviewed  bool // review pass already offered/consumed

	// Results in resolution order, at most one entry per card. A review
	// resolution removes the card's Skipped entry and appends the new one.
	results []game.ItemResult

	lastCorrect bool
	promptedAt  time.Time
	now         func() time.Time
}

// New creates an engine over a non-empty deck.
func New(deck []game.Item) (*Engine, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("recall: empty deck")
	}
	queue := make([]int, len(deck))
	for i := range deck {
		queue[i] = i
	}
	e := &Engine{
		deck:  deck,
		queue: queue,
		phase: PhasePrompted,
		now:   time.Now,
	}
	e.promptedAt = e.now()
	return e, nil
}

// Phase returns the current engine phase.
func (e *Engine) Phase() Phase { return e.phase }

// Reviewing reports whether the engine is in the review-skipped pass.
func (e *Engine) Reviewing() bool { return e.reviewing }

// Current returns the card being prompted or revealed, nil once done.
func (e *Engine) Current() *game.Item {
	if e.phase == PhaseDone {
		return nil
	}
	return &e.deck[e.queue[e.pos]]
}

// Submit grades a free-text answer for the current card and moves to
// Revealed. Ignored outside PhasePrompted.
func (e *Engine) Submit(answer string) game.Outcome {
	if e.phase != PhasePrompted {
		return game.OutcomeIncorrect
	}
	card := e.deck[e.queue[e.pos]]

	outcome := game.OutcomeIncorrect
	if game.MatchContainment(answer, card.Answer) {
		outcome = game.OutcomeCorrect
	}
	e.resolve(card.ID, outcome)
	return outcome
}

// Skip records a Skipped outcome for the current card and moves to
// Revealed. Skips count against accuracy like wrong answers but are
// reported distinctly.
func (e *Engine) Skip() {
	if e.phase != PhasePrompted {
		return
	}
	card := e.deck[e.queue[e.pos]]
	e.resolve(card.ID, game.OutcomeSkipped)
}

func (e *Engine) resolve(cardID string, outcome game.Outcome) {
	// Drop a previous entry for this card (review pass overwrites).
	for i, r := range e.results {
		if r.ItemID == cardID {
			e.results = append(e.results[:i], e.results[i+1:]...)
			break
		}
	}
	e.results = append(e.results, game.ItemResult{
		ItemID:  cardID,
		Outcome: outcome,
		Elapsed: e.now().Sub(e.promptedAt),
	})
	e.lastCorrect = outcome == game.OutcomeCorrect
	e.phase = PhaseRevealed
}

// LastCorrect reports whether the most recent resolution was correct.
func (e *Engine) LastCorrect() bool { return e.lastCorrect }

// Advance moves past the reveal to the next card, or to PhaseDone when
// the pass is exhausted. Returns false once the engine is done.
func (e *Engine) Advance() bool {
	if e.phase != PhaseRevealed {
		return e.phase != PhaseDone
	}
	if e.pos+1 < len(e.queue) {
		e.pos++
		e.phase = PhasePrompted
		e.promptedAt = e.now()
		return true
	}
	e.phase = PhaseDone
	return false
}

// CanReview reports whether a review-skipped pass is available: the first
// pass is done, at least one card was skipped, and no review ran yet.
func (e *Engine) CanReview() bool {
	if e.phase != PhaseDone || e.reviewing || e.reviewed {
		return false
	}
	return len(e.skippedIndices()) > 0
}

// StartReview begins the one-time second pass over skipped cards.
func (e *Engine) StartReview() error {
	if !e.CanReview() {
		return fmt.Errorf("recall: review pass unavailable")
	}
	e.queue = e.skippedIndices()
	e.pos = 0
	e.reviewing = true
	e.reviewed = true
	e.phase = PhasePrompted
	e.promptedAt = e.now()
	return nil
}

// DeclineReview marks the review pass as consumed without running it.
func (e *Engine) DeclineReview() {
	if e.phase == PhaseDone {
		e.reviewed = true
	}
}

func (e *Engine) skippedIndices() []int {
	skipped := make(map[string]bool)
	for _, r := range e.results {
		if r.Outcome == game.OutcomeSkipped {
			skipped[r.ItemID] = true
		}
	}
	var idx []int
	for i, c := range e.deck {
		if skipped[c.ID] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Completed reports whether every card has been resolved and no review
// pass is pending.
func (e *Engine) Completed() bool {
	return e.phase == PhaseDone
}

// Score is the number of cards answered correctly.
func (e *Engine) Score() int {
	return game.Tally(e.results).Correct
}

// Results returns the latest result per card in resolution order.
func (e *Engine) Results() []game.ItemResult {
	out := make([]game.ItemResult, len(e.results))
	copy(out, e.results)
	return out
}

// Remaining returns the number of cards left in the current pass,
// including the current one.
func (e *Engine) Remaining() int {
	if e.phase == PhaseDone {
		return 0
	}
	return len(e.queue) - e.pos
}

// Size returns the deck size.
func (e *Engine) Size() int { return len(e.deck) }
