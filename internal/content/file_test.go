package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func writeLessonFile(t *testing.T, dir, lesson, name, data string) {
	t.Helper()
	lessonDir := filepath.Join(dir, lesson)
	if err := os.MkdirAll(lessonDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(lessonDir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFileProviderFetch(t *testing.T) {
	dir := t.TempDir()
	writeLessonFile(t, dir, "biology-101", "recall.json",
		`{"cards":[{"prompt":"Powerhouse of the cell?","answer":"mitochondria"}]}`)

	p := NewFileProvider(dir)
	payload, err := p.Fetch(context.Background(), "biology-101", game.KindRecall)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if payload.Kind != game.KindRecall {
		t.Errorf("kind = %s, want recall", payload.Kind)
	}
	if len(payload.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(payload.Cards))
	}
}

func TestFileProviderMissingLessonIsEmptyContent(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	_, err := p.Fetch(context.Background(), "no-such-lesson", game.KindRecall)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFileProviderMalformedFileIsFetchError(t *testing.T) {
	dir := t.TempDir()
	writeLessonFile(t, dir, "broken", "match.json", `{"pairs":`)

	p := NewFileProvider(dir)
	_, err := p.Fetch(context.Background(), "broken", game.KindMatch)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.LessonID != "broken" {
		t.Errorf("lesson = %q, want broken", fetchErr.LessonID)
	}
}

func TestFileProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFileProvider(t.TempDir())
	_, err := p.Fetch(ctx, "anything", game.KindRecall)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFileProviderUnknownKind(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	_, err := p.Fetch(context.Background(), "lesson", game.Kind("karaoke"))

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
}
