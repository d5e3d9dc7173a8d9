package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/llm"
)

func TestGeneratorFetchLadder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"questions":[
			{"prompt":"2+2?","options":["3","4","5","6"],"correct":1},
			{"prompt":"3*3?","options":["6","7","8","9"],"correct":3}
		]
	}`)})

	g := NewGenerator(mock, DefaultGenConfig())
	payload, err := g.Fetch(context.Background(), "arithmetic", game.KindLadder)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(payload.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(payload.Questions))
	}
	if payload.Questions[0].Correct != 1 {
		t.Errorf("correct index = %d, want 1", payload.Questions[0].Correct)
	}

	req := mock.Calls[0]
	if req.Purpose != "question-gen" {
		t.Errorf("purpose = %q, want question-gen", req.Purpose)
	}
	if req.Schema != QuestionsSchema {
		t.Error("expected the ladder questions schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "arithmetic") {
		t.Error("expected the topic in the user message")
	}
}

func TestGeneratorEmptyResponseIsEmptyContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"cards":[]}`)})

	g := NewGenerator(mock, DefaultGenConfig())
	_, err := g.Fetch(context.Background(), "anything", game.KindRecall)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestGeneratorProviderFailureIsFetchError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})

	g := NewGenerator(mock, DefaultGenConfig())
	_, err := g.Fetch(context.Background(), "anything", game.KindMatch)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("expected the provider error to remain unwrappable")
	}
}

func TestGeneratorCancellationPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})

	g := NewGenerator(mock, DefaultGenConfig())
	_, err := g.Fetch(context.Background(), "anything", game.KindBoard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		t.Error("cancellation must not be classified as a fetch failure")
	}
}

func TestGeneratorPurposePerKind(t *testing.T) {
	want := map[game.Kind]string{
		game.KindRecall: "deck-gen",
		game.KindLadder: "question-gen",
		game.KindBoard:  "board-gen",
		game.KindMatch:  "pair-gen",
	}
	for kind, purpose := range want {
		if got := purposeFor(kind); got != purpose {
			t.Errorf("purposeFor(%s) = %q, want %q", kind, got, purpose)
		}
	}
}
