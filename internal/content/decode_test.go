package content

import (
	"errors"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func TestDecodeRecallDeck(t *testing.T) {
	data := []byte(`{"cards":[
		{"prompt":"Powerhouse of the cell?","answer":"mitochondria"},
		{"id":"c2","prompt":"Basic unit of life?","answer":"cell"}
	]}`)

	p, err := Decode(game.KindRecall, data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(p.Cards))
	}
	if p.Cards[0].ID != "card-1" {
		t.Errorf("expected positional ID card-1, got %q", p.Cards[0].ID)
	}
	if p.Cards[1].ID != "c2" {
		t.Errorf("expected authored ID c2, got %q", p.Cards[1].ID)
	}
}

func TestDecodeEmptyCollection(t *testing.T) {
	for _, tt := range []struct {
		kind game.Kind
		data string
	}{
		{game.KindRecall, `{"cards":[]}`},
		{game.KindRecall, `{}`},
		{game.KindLadder, `{"questions":[]}`},
		{game.KindBoard, `{"categories":[{"name":"Empty","cells":[]}]}`},
		{game.KindMatch, `{"pairs":[]}`},
	} {
		_, err := Decode(tt.kind, []byte(tt.data))
		if !errors.Is(err, ErrEmptyContent) {
			t.Errorf("%s %s: expected ErrEmptyContent, got %v", tt.kind, tt.data, err)
		}
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode(game.KindRecall, []byte(`{"cards":`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if errors.Is(err, ErrEmptyContent) {
		t.Fatal("malformed JSON must not be classified as empty content")
	}
}

func TestDecodeBoardDefaults(t *testing.T) {
	data := []byte(`{"categories":[
		{"name":"Rivers","cells":[
			{"clue":"Longest river","answer":"Nile"},
			{"clue":"Largest by volume","answer":"Amazon","value":500,"wagered":true}
		]}
	]}`)

	p, err := Decode(game.KindBoard, data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cells := p.Categories[0].Cells
	if cells[0].Value != 100 {
		t.Errorf("expected row default 100, got %d", cells[0].Value)
	}
	if cells[1].Value != 500 {
		t.Errorf("expected authored value 500, got %d", cells[1].Value)
	}
	if !cells[1].Wagered {
		t.Error("expected second cell wagered")
	}
	if cells[0].Item.ID != "cell-1-1" {
		t.Errorf("expected positional ID cell-1-1, got %q", cells[0].Item.ID)
	}
}

func TestDecodeMatchPairs(t *testing.T) {
	data := []byte(`{"pairs":[
		{"left":"osmosis","right":"diffusion of water"},
		{"left":"mitosis","right":"cell division"}
	]}`)

	p, err := Decode(game.KindMatch, data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(p.Pairs))
	}
	if p.Pairs[0].ID != "pair-1" {
		t.Errorf("expected positional ID pair-1, got %q", p.Pairs[0].ID)
	}
	if p.ItemCount() != 2 {
		t.Errorf("item count = %d, want 2", p.ItemCount())
	}
}
