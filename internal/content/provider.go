package content

import (
	"context"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/match"
)

// Provider supplies game content for one lesson and game kind.
type Provider interface {
	// Fetch returns a payload shaped for kind. An empty or missing
	// collection is ErrEmptyContent; transport and decode failures are
	// *FetchError. No partially-filled payload is ever returned.
	Fetch(ctx context.Context, lessonID string, kind game.Kind) (*Payload, error)
}

// Payload is a kind-shaped content bundle. Exactly one of the
// collections is populated, matching Kind.
type Payload struct {
	Kind game.Kind

	Cards      []game.Item      // KindRecall
	Questions  []game.Item      // KindLadder
	Categories []board.Category // KindBoard
	Pairs      []match.Pair     // KindMatch
}

// Validate checks that the collection matching Kind is non-empty.
func (p *Payload) Validate() error {
	if !p.Kind.Valid() {
		return &FetchError{Kind: p.Kind, Err: errUnknownKind}
	}

	switch p.Kind {
	case game.KindRecall:
		if len(p.Cards) == 0 {
			return ErrEmptyContent
		}
	case game.KindLadder:
		if len(p.Questions) == 0 {
			return ErrEmptyContent
		}
	case game.KindBoard:
		cells := 0
		for _, c := range p.Categories {
			cells += len(c.Cells)
		}
		if cells == 0 {
			return ErrEmptyContent
		}
	case game.KindMatch:
		if len(p.Pairs) == 0 {
			return ErrEmptyContent
		}
	}
	return nil
}

// ItemCount returns the number of gradable items in the payload.
func (p *Payload) ItemCount() int {
	switch p.Kind {
	case game.KindRecall:
		return len(p.Cards)
	case game.KindLadder:
		return len(p.Questions)
	case game.KindBoard:
		n := 0
		for _, c := range p.Categories {
			n += len(c.Cells)
		}
		return n
	case game.KindMatch:
		return len(p.Pairs)
	}
	return 0
}
