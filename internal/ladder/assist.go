package ladder

import (
	"fmt"
	"math/rand/v2"

	"github.com/quizarcade/quizarcade/internal/game"
)

// phoneHintAccuracy is the probability the phone hint names the correct
// option.
const phoneHintAccuracy = 0.8

// Audience poll plurality bounds for the correct option, in percent.
const (
	pollCorrectMin = 40
	pollCorrectMax = 70
)

// AssistResult carries the advisory output of a lifeline. Only the field
// matching the kind is populated.
type AssistResult struct {
	Kind game.AssistKind

	// Eliminated holds the two removed wrong options (EliminateTwo).
	Eliminated []int

	// Poll holds a percentage per option summing to 100 (PollAudience).
	Poll []int

	// Suggested is the advised option index (PhoneHint).
	Suggested int
}

// AssistAvailable reports whether the lifeline can still be used this
// session.
func (e *Engine) AssistAvailable(kind game.AssistKind) bool {
	return !e.usedAssist[kind]
}

// UseAssist consumes a lifeline on the current question. Each lifeline is
// usable once per session, on any rung, and only while the question is
// open: Asking, or AnswerSelected with the pending choice still
// replaceable. Lock is the cutoff. Consumption is irreversible; results
// are purely advisory except EliminateTwo, which removes two wrong
// options from play.
func (e *Engine) UseAssist(kind game.AssistKind) (AssistResult, error) {
	if e.phase != PhaseAsking && e.phase != PhaseAnswerSelected {
		return AssistResult{}, fmt.Errorf("ladder: lifelines only before locking")
	}
	if e.usedAssist[kind] {
		return AssistResult{}, fmt.Errorf("ladder: %s already used", kind)
	}

	q := e.questions[e.rung]
	res := AssistResult{Kind: kind}

	switch kind {
	case game.AssistEliminateTwo:
		res.Eliminated = eliminateTwo(e.rng, q.Correct)
		for _, idx := range res.Eliminated {
			e.eliminated[idx] = true
		}
		// A pending selection on a removed option is cleared.
		if e.selected >= 0 && e.eliminated[e.selected] {
			e.selected = -1
			e.phase = PhaseAsking
		}
	case game.AssistPollAudience:
		res.Poll = audiencePoll(e.rng, q.Correct)
	case game.AssistPhoneHint:
		res.Suggested = phoneHint(e.rng, q.Correct)
	default:
		return AssistResult{}, fmt.Errorf("ladder: unknown lifeline %q", kind)
	}

	e.usedAssist[kind] = true
	e.assistOrder = append(e.assistOrder, kind)
	e.itemAssist = append(e.itemAssist, kind)
	return res, nil
}

// AssistsUsed returns every lifeline consumed this session, in use
// order. Consumption is irreversible, so this includes a lifeline spent
// on a question that never resolved (walk-away or abandon).
func (e *Engine) AssistsUsed() []game.AssistKind {
	out := make([]game.AssistKind, len(e.assistOrder))
	copy(out, e.assistOrder)
	return out
}

// eliminateTwo picks two of the three wrong options at random. The
// correct option is never removed.
func eliminateTwo(rng *rand.Rand, correct int) []int {
	var wrong []int
	for i := range optionCount {
		if i != correct {
			wrong = append(wrong, i)
		}
	}
	// Drop one wrong option at random; remove the other two.
	keep := rng.IntN(len(wrong))
	var out []int
	for i, idx := range wrong {
		if i != keep {
			out = append(out, idx)
		}
	}
	return out
}

// audiencePoll fabricates a percentage distribution over the options,
// biased so the correct one receives a 40-70% plurality.
func audiencePoll(rng *rand.Rand, correct int) []int {
	poll := make([]int, optionCount)
	poll[correct] = pollCorrectMin + rng.IntN(pollCorrectMax-pollCorrectMin+1)

	remaining := 100 - poll[correct]
	var others []int
	for i := range optionCount {
		if i != correct {
			others = append(others, i)
		}
	}
	// Split the remainder so no other option reaches the correct share.
	maxShare := poll[correct] - 1
	for i, idx := range others {
		left := len(others) - 1 - i
		lo := remaining - left*maxShare
		if lo < 0 {
			lo = 0
		}
		hi := remaining
		if hi > maxShare {
			hi = maxShare
		}
		share := lo + rng.IntN(hi-lo+1)
		poll[idx] = share
		remaining -= share
	}
	return poll
}

// phoneHint suggests the correct option with phoneHintAccuracy
// probability, otherwise a uniformly random wrong option.
func phoneHint(rng *rand.Rand, correct int) int {
	if rng.Float64() < phoneHintAccuracy {
		return correct
	}
	wrong := rng.IntN(optionCount - 1)
	if wrong >= correct {
		wrong++
	}
	return wrong
}
