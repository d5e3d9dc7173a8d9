package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quizarcade/quizarcade/internal/game"
)

// FileProvider loads payloads from a lesson directory laid out as
// <dir>/<lessonID>/<kind>.json. It serves local authoring and runs
// without any LLM key configured.
type FileProvider struct {
	dir string
}

// NewFileProvider creates a provider rooted at dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

func (p *FileProvider) Fetch(ctx context.Context, lessonID string, kind game.Kind) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: errUnknownKind}
	}

	path := filepath.Join(p.dir, lessonID, string(kind)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrEmptyContent
		}
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: fmt.Errorf("read lesson file: %w", err)}
	}

	payload, err := Decode(kind, data)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			return nil, ErrEmptyContent
		}
		return nil, &FetchError{LessonID: lessonID, Kind: kind, Err: err}
	}
	return payload, nil
}
