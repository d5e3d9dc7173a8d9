package content

import (
	"encoding/json"
	"fmt"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/match"
)

// Wire format shared by lesson files and LLM output.
type payloadFile struct {
	Cards      []itemFile     `json:"cards"`
	Questions  []itemFile     `json:"questions"`
	Categories []categoryFile `json:"categories"`
	Pairs      []pairFile     `json:"pairs"`
}

type itemFile struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

type categoryFile struct {
	Name  string     `json:"name"`
	Cells []cellFile `json:"cells"`
}

type cellFile struct {
	ID      string `json:"id"`
	Clue    string `json:"clue"`
	Answer  string `json:"answer"`
	Value   int    `json:"value"`
	Wagered bool   `json:"wagered"`
}

type pairFile struct {
	ID    string `json:"id"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Decode parses raw payload JSON into a validated Payload for kind.
// Missing IDs are assigned positionally; missing board values follow
// the row (row 1 = 100 points, row 2 = 200, ...).
func Decode(kind game.Kind, data []byte) (*Payload, error) {
	var raw payloadFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	p := &Payload{Kind: kind}
	switch kind {
	case game.KindRecall:
		p.Cards = decodeItems(raw.Cards, "card")
	case game.KindLadder:
		p.Questions = decodeItems(raw.Questions, "question")
	case game.KindBoard:
		p.Categories = decodeCategories(raw.Categories)
	case game.KindMatch:
		p.Pairs = decodePairs(raw.Pairs)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeItems(items []itemFile, idPrefix string) []game.Item {
	out := make([]game.Item, 0, len(items))
	for i, it := range items {
		id := it.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", idPrefix, i+1)
		}
		out = append(out, game.Item{
			ID:      id,
			Prompt:  it.Prompt,
			Answer:  it.Answer,
			Options: it.Options,
			Correct: it.Correct,
		})
	}
	return out
}

func decodeCategories(cats []categoryFile) []board.Category {
	out := make([]board.Category, 0, len(cats))
	for ci, c := range cats {
		cells := make([]board.Cell, 0, len(c.Cells))
		for ri, cell := range c.Cells {
			id := cell.ID
			if id == "" {
				id = fmt.Sprintf("cell-%d-%d", ci+1, ri+1)
			}
			value := cell.Value
			if value == 0 {
				value = (ri + 1) * 100
			}
			cells = append(cells, board.Cell{
				Item: game.Item{
					ID:     id,
					Prompt: cell.Clue,
					Answer: cell.Answer,
				},
				Value:   value,
				Wagered: cell.Wagered,
			})
		}
		out = append(out, board.Category{Name: c.Name, Cells: cells})
	}
	return out
}

func decodePairs(pairs []pairFile) []match.Pair {
	out := make([]match.Pair, 0, len(pairs))
	for i, p := range pairs {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("pair-%d", i+1)
		}
		out = append(out, match.Pair{ID: id, Left: p.Left, Right: p.Right})
	}
	return out
}
