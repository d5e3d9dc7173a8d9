package content

import (
	"errors"
	"fmt"

	"github.com/quizarcade/quizarcade/internal/game"
)

// ErrEmptyContent marks a payload whose expected collection is empty or
// absent. The session treats it the same terminal way as a fetch
// failure, with a different message.
var ErrEmptyContent = errors.New("content: empty payload")

var errUnknownKind = errors.New("content: unknown game kind")

// FetchError reports a failure to obtain or decode content for one
// lesson. It is terminal for the session being started and local to it.
type FetchError struct {
	LessonID string
	Kind     game.Kind
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("content: fetch %s/%s: %v", e.LessonID, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
