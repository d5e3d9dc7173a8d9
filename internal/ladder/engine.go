// Package ladder implements the progressive-stakes multiple-choice quiz:
// each question is worth the next rung of a money ladder, a wrong answer
// drops the player to the last guaranteed checkpoint, and the player may
// walk away with the completed rung's value before locking an answer.
// Three one-shot lifelines narrow or advise on the current question.
package ladder

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/quizarcade/quizarcade/internal/game"
)

// optionCount is the fixed number of choices per question.
const optionCount = 4

// Phase is the per-question state of the engine.
type Phase int

const (
	PhaseAsking         Phase = iota // question shown, nothing committed
	PhaseAnswerSelected              // a choice is pending, not yet final
	PhaseLocked                      // final answer committed
	PhaseResolved                    // graded, waiting to advance
	PhaseGameOver                    // won the top rung or lost
	PhaseWalkedAway                  // player quit with their winnings
)

// Resolution is the outcome of grading a locked answer.
type Resolution struct {
	Correct  bool
	Terminal bool // no further questions (won, or lost)
	Won      bool // correct on the final rung
	Winnings int  // meaningful only when Terminal
}

// Options configures an Engine. Zero values select real randomness and
// the wall clock; tests inject seeded sources.
type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// Engine drives one money-ladder session.
type Engine struct {
	questions []game.Item
	lad       Ladder

	rung     int // current rung index; also count of rungs completed
	phase    Phase
	selected int  // pending choice, -1 when none
	winnings int  // set on a terminal transition
	won      bool // correct on the final rung

	eliminated  map[int]bool             // options removed on the current question
	usedAssist  map[game.AssistKind]bool // session-wide one-shot tracking
	assistOrder []game.AssistKind        // every consumed lifeline, in use order
	itemAssist  []game.AssistKind        // assists used on the current question
	results     []game.ItemResult

	rng      *rand.Rand
	now      func() time.Time
	askedAt  time.Time
}

// New creates an engine. The ladder must have exactly one rung per
// question and every question must carry four options.
func New(questions []game.Item, lad Ladder, opts Options) (*Engine, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("ladder: no questions")
	}
	if len(questions) != lad.Len() {
		return nil, fmt.Errorf("ladder: %d questions for %d rungs", len(questions), lad.Len())
	}
	for i, q := range questions {
		if len(q.Options) != optionCount {
			return nil, fmt.Errorf("ladder: question %d has %d options, want %d", i, len(q.Options), optionCount)
		}
		if q.Correct < 0 || q.Correct >= optionCount {
			return nil, fmt.Errorf("ladder: question %d correct index %d out of range", i, q.Correct)
		}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	e := &Engine{
		questions:  questions,
		lad:        lad,
		selected:   -1,
		eliminated: make(map[int]bool),
		usedAssist: make(map[game.AssistKind]bool),
		rng:        rng,
		now:        now,
	}
	e.askedAt = now()
	return e, nil
}

// Phase returns the current engine phase.
func (e *Engine) Phase() Phase { return e.phase }

// Rung returns the 0-based index of the rung in play.
func (e *Engine) Rung() int { return e.rung }

// Ladder returns the engine's ladder.
func (e *Engine) Ladder() Ladder { return e.lad }

// Current returns the question in play, nil on a terminal phase.
func (e *Engine) Current() *game.Item {
	if e.terminal() {
		return nil
	}
	return &e.questions[e.rung]
}

func (e *Engine) terminal() bool {
	return e.phase == PhaseGameOver || e.phase == PhaseWalkedAway
}

// Selected returns the pending choice index, -1 when none.
func (e *Engine) Selected() int { return e.selected }

// Eliminated reports whether option idx was removed by the fifty-fifty
// lifeline on the current question.
func (e *Engine) Eliminated(idx int) bool { return e.eliminated[idx] }

// Select records a pending choice. Re-selecting before locking replaces
// the previous choice with no side effect recorded.
func (e *Engine) Select(idx int) error {
	if e.phase != PhaseAsking && e.phase != PhaseAnswerSelected {
		return fmt.Errorf("ladder: cannot select in phase %d", e.phase)
	}
	if idx < 0 || idx >= optionCount {
		return fmt.Errorf("ladder: option index %d out of range", idx)
	}
	if e.eliminated[idx] {
		return fmt.Errorf("ladder: option %d was eliminated", idx)
	}
	e.selected = idx
	e.phase = PhaseAnswerSelected
	return nil
}

// Lock commits the pending choice as the final answer. Irreversible: no
// further selection changes are accepted.
func (e *Engine) Lock() error {
	if e.phase != PhaseAnswerSelected {
		return fmt.Errorf("ladder: nothing selected to lock")
	}
	e.phase = PhaseLocked
	return nil
}

// Resolve grades the locked answer. On a correct answer below the top
// rung the engine waits in PhaseResolved for Advance; otherwise it moves
// straight to PhaseGameOver with the terminal winnings.
func (e *Engine) Resolve() (Resolution, error) {
	if e.phase != PhaseLocked {
		return Resolution{}, fmt.Errorf("ladder: no locked answer to resolve")
	}
	q := e.questions[e.rung]
	correct := e.selected == q.Correct

	outcome := game.OutcomeIncorrect
	if correct {
		outcome = game.OutcomeCorrect
	}
	e.results = append(e.results, game.ItemResult{
		ItemID:  q.ID,
		Outcome: outcome,
		Assists: e.itemAssist,
		Elapsed: e.now().Sub(e.askedAt),
	})

	res := Resolution{Correct: correct}
	switch {
	case correct && e.rung == e.lad.Len()-1:
		e.winnings = e.lad.Value(e.rung)
		e.won = true
		e.phase = PhaseGameOver
		res.Terminal = true
		res.Won = true
		res.Winnings = e.winnings
	case correct:
		e.phase = PhaseResolved
	default:
		e.winnings = e.lad.lossValue(e.rung)
		e.phase = PhaseGameOver
		res.Terminal = true
		res.Winnings = e.winnings
	}
	return res, nil
}

// Advance moves from a correct resolution to the next rung.
func (e *Engine) Advance() error {
	if e.phase != PhaseResolved {
		return fmt.Errorf("ladder: nothing to advance from")
	}
	e.rung++
	e.phase = PhaseAsking
	e.selected = -1
	e.eliminated = make(map[int]bool)
	e.itemAssist = nil
	e.askedAt = e.now()
	return nil
}

// WalkAway ends the session while the question is still open: Asking,
// or AnswerSelected with nothing locked. A pending selection commits
// the player to nothing, so it does not forfeit the walk-away. Winnings
// are the value of the last completed rung (0 when none), which is
// never below the checkpoint floor on a strictly increasing ladder.
func (e *Engine) WalkAway() (int, error) {
	if e.phase != PhaseAsking && e.phase != PhaseAnswerSelected {
		return 0, fmt.Errorf("ladder: can only walk away before locking")
	}
	e.winnings = e.lad.completedValue(e.rung)
	e.phase = PhaseWalkedAway
	return e.winnings, nil
}

// Completed reports whether the engine reached a terminal phase.
func (e *Engine) Completed() bool { return e.terminal() }

// Won reports whether the top rung was answered correctly.
func (e *Engine) Won() bool { return e.won }

// Winnings returns the terminal amount: always a rung value or 0.
func (e *Engine) Winnings() int { return e.winnings }

// Score is the terminal winnings (0 while the game is still running).
func (e *Engine) Score() int { return e.winnings }

// Results returns one result per resolved question in order.
func (e *Engine) Results() []game.ItemResult {
	out := make([]game.ItemResult, len(e.results))
	copy(out, e.results)
	return out
}
