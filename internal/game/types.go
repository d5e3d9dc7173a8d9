package game

import "time"

// Kind identifies one of the four game modes.
type Kind string

const (
	KindRecall Kind = "recall" // flashcard free recall
	KindLadder Kind = "ladder" // progressive-stakes multiple choice
	KindBoard  Kind = "board"  // category/value grid with wagers
	KindMatch  Kind = "match"  // two-column pair matching
)

// Kinds lists every game kind in menu order.
func Kinds() []Kind {
	return []Kind{KindRecall, KindLadder, KindBoard, KindMatch}
}

// Valid reports whether k is a known game kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRecall, KindLadder, KindBoard, KindMatch:
		return true
	}
	return false
}

// Title returns the display name for the kind.
func (k Kind) Title() string {
	switch k {
	case KindRecall:
		return "Flash Recall"
	case KindLadder:
		return "Money Ladder"
	case KindBoard:
		return "Clue Board"
	case KindMatch:
		return "Pair Match"
	}
	return string(k)
}

// Item is one gradable unit: a flashcard, a multiple-choice question, a
// board clue or one side of a match pair. Immutable once loaded.
type Item struct {
	// ID is a stable identifier unique within one content payload.
	ID string

	// Prompt is the text shown to the learner.
	Prompt string

	// Answer is the reference answer used for grading.
	Answer string

	// Options holds the four choices for multiple-choice items.
	// Empty for free-text items.
	Options []string

	// Correct is the index into Options of the correct choice.
	// Meaningless when Options is empty.
	Correct int
}

// Outcome is the graded result of one item.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// AssistKind is a one-time-use aid in the ladder game.
type AssistKind string

const (
	AssistEliminateTwo AssistKind = "eliminate-two"
	AssistPollAudience AssistKind = "poll-audience"
	AssistPhoneHint    AssistKind = "phone-hint"
)

// ItemResult is the final outcome for one item. Appended exactly once per
// item per session and never mutated afterward; the recall review pass
// replaces a Skipped entry rather than appending a second one.
type ItemResult struct {
	ItemID  string
	Outcome Outcome
	Assists []AssistKind
	Elapsed time.Duration
}
