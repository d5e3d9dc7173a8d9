// Package session owns the lifecycle shared by every game kind: content
// loading, engine construction, and the exactly-once terminal report.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/ladder"
	"github.com/quizarcade/quizarcade/internal/match"
	"github.com/quizarcade/quizarcade/internal/recall"
	"github.com/quizarcade/quizarcade/internal/report"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseFailed
	PhaseCompleted
	PhaseAbandoned
)

// CloseReason distinguishes a finished session from a quit one.
type CloseReason int

const (
	Completed CloseReason = iota
	Abandoned
)

// FailReason classifies why a session never became active.
type FailReason int

const (
	FailNone FailReason = iota
	FailEmptyContent
	FailFetch
)

// maxLadderQuestions caps a ladder session at the default ladder length.
const maxLadderQuestions = 15

// Options configures a Session. Provider is required; a nil Reporter
// logs results instead of persisting them.
type Options struct {
	Provider content.Provider
	Reporter report.Reporter

	Rand *rand.Rand
	Now  func() time.Time
}

// Session drives one game instance from load to terminal report. It has
// exactly one writer: all methods must be called from the same
// goroutine (the UI event loop).
type Session struct {
	ID       string
	LessonID string
	Kind     game.Kind

	phase      Phase
	failReason FailReason
	failErr    error

	itemCount int
	startedAt time.Time
	closed    bool

	cancelFetch context.CancelFunc

	recall *recall.Engine
	ladder *ladder.Engine
	board  *board.Engine
	match  *match.Engine

	provider content.Provider
	reporter report.Reporter
	rng      *rand.Rand
	now      func() time.Time
}

// New creates a session in the Loading phase. Call Load to fetch
// content and activate it.
func New(lessonID string, kind game.Kind, opts Options) (*Session, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("session: nil content provider")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("session: unknown game kind %q", kind)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = report.LogReporter{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		ID:       uuid.NewString(),
		LessonID: lessonID,
		Kind:     kind,
		phase:    PhaseLoading,
		provider: opts.Provider,
		reporter: reporter,
		rng:      rng,
		now:      now,
	}, nil
}

// BeginLoad registers a cancellable content fetch and returns it for
// the caller to run off the owning goroutine. The fetch closes over
// immutable fields only; feed its outcome back through ApplyLoad so all
// session mutation stays with the single writer. Closing the session
// cancels a fetch still in flight.
func (s *Session) BeginLoad(ctx context.Context) (func() (*content.Payload, error), error) {
	if s.phase != PhaseLoading {
		return nil, fmt.Errorf("session: load in phase %d", s.phase)
	}
	if s.cancelFetch != nil {
		return nil, fmt.Errorf("session: load already in flight")
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelFetch = cancel

	provider, lessonID, kind := s.provider, s.LessonID, s.Kind
	return func() (*content.Payload, error) {
		return provider.Fetch(fetchCtx, lessonID, kind)
	}, nil
}

// ApplyLoad consumes the fetch outcome and constructs the engine. On
// success the session becomes Active; on empty content or fetch failure
// it becomes Failed and no engine exists. A session closed while the
// fetch was in flight stays as Close left it: the late outcome is
// dropped.
func (s *Session) ApplyLoad(payload *content.Payload, err error) error {
	if s.closed || s.phase != PhaseLoading {
		return err
	}
	if s.cancelFetch != nil {
		s.cancelFetch() // the fetch has returned; release its context
		s.cancelFetch = nil
	}

	if err != nil {
		return s.fail(err)
	}
	if err := payload.Validate(); err != nil {
		return s.fail(err)
	}
	if err := s.buildEngine(payload); err != nil {
		return s.fail(err)
	}

	s.itemCount = payload.ItemCount()
	if s.Kind == game.KindLadder && s.itemCount > maxLadderQuestions {
		s.itemCount = maxLadderQuestions
	}
	s.startedAt = s.now()
	s.phase = PhaseActive
	return nil
}

// Load fetches and activates in one call, for callers that already own
// the session's goroutine. The TUI splits the work instead: BeginLoad
// on the event loop, the fetch in a command, ApplyLoad on the loop.
func (s *Session) Load(ctx context.Context) error {
	fetch, err := s.BeginLoad(ctx)
	if err != nil {
		return err
	}
	payload, fetchErr := fetch()
	return s.ApplyLoad(payload, fetchErr)
}

func (s *Session) fail(err error) error {
	s.phase = PhaseFailed
	s.failErr = err
	if errors.Is(err, content.ErrEmptyContent) {
		s.failReason = FailEmptyContent
	} else {
		s.failReason = FailFetch
	}
	return err
}

func (s *Session) buildEngine(p *content.Payload) error {
	var err error
	switch s.Kind {
	case game.KindRecall:
		s.recall, err = recall.New(p.Cards)
	case game.KindLadder:
		questions := p.Questions
		if len(questions) > maxLadderQuestions {
			questions = questions[:maxLadderQuestions]
		}
		lad, ladErr := fitLadder(len(questions))
		if ladErr != nil {
			return ladErr
		}
		s.ladder, err = ladder.New(questions, lad, ladder.Options{Rand: s.rng, Now: s.now})
	case game.KindBoard:
		s.board, err = board.New(p.Categories, board.Options{Now: s.now})
	case game.KindMatch:
		s.match, err = match.New(p.Pairs, match.Options{Rand: s.rng, Now: s.now})
	}
	return err
}

// fitLadder sizes the default ladder to the question count: the first n
// stake values, keeping whichever guaranteed checkpoints still fit.
func fitLadder(n int) (ladder.Ladder, error) {
	def := ladder.Default()
	if n == def.Len() {
		return def, nil
	}

	rungs := make([]int, n)
	var checkpoints []int
	for i := 0; i < n; i++ {
		rungs[i] = def.Value(i)
		if def.IsCheckpoint(i) {
			checkpoints = append(checkpoints, i)
		}
	}
	return ladder.NewLadder(rungs, checkpoints)
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// FailReason reports why the session failed to start.
func (s *Session) FailReason() FailReason { return s.failReason }

// FailErr returns the error that failed the session, if any.
func (s *Session) FailErr() error { return s.failErr }

// Closed reports whether the session has been closed. Timer callbacks
// scheduled before closing must check this and drop their work.
func (s *Session) Closed() bool { return s.closed }

// ItemCount is the number of gradable items loaded into the session.
func (s *Session) ItemCount() int { return s.itemCount }

// Recall returns the flashcard engine, or nil for other kinds.
func (s *Session) Recall() *recall.Engine { return s.recall }

// Ladder returns the money-ladder engine, or nil for other kinds.
func (s *Session) Ladder() *ladder.Engine { return s.ladder }

// Board returns the board engine, or nil for other kinds.
func (s *Session) Board() *board.Engine { return s.board }

// Match returns the matching engine, or nil for other kinds.
func (s *Session) Match() *match.Engine { return s.match }

// Results returns the item results resolved so far, in resolution order.
func (s *Session) Results() []game.ItemResult {
	switch {
	case s.recall != nil:
		return s.recall.Results()
	case s.ladder != nil:
		return s.ladder.Results()
	case s.board != nil:
		return s.board.Results()
	case s.match != nil:
		return s.match.Results()
	}
	return nil
}

// Score returns the engine's running score or winnings.
func (s *Session) Score() int {
	switch {
	case s.recall != nil:
		return s.recall.Score()
	case s.ladder != nil:
		return s.ladder.Score()
	case s.board != nil:
		return s.board.Score()
	case s.match != nil:
		return s.match.Score()
	}
	return 0
}

// EngineCompleted reports whether the underlying engine reached its
// terminal state.
func (s *Session) EngineCompleted() bool {
	switch {
	case s.recall != nil:
		return s.recall.Completed()
	case s.ladder != nil:
		return s.ladder.Completed()
	case s.board != nil:
		return s.board.Completed()
	case s.match != nil:
		return s.match.Completed()
	}
	return false
}

// Close ends the session and submits the terminal report exactly once.
// An abandoned session with no resolved items submits nothing. Closing
// twice, or closing a failed or still-loading session, is a no-op for
// reporting. Report failures are logged and never block teardown.
func (s *Session) Close(ctx context.Context, reason CloseReason) *Summary {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.cancelFetch != nil {
		s.cancelFetch()
	}

	if s.phase != PhaseActive {
		if s.phase == PhaseLoading {
			s.phase = PhaseAbandoned
		}
		return nil
	}

	if reason == Completed {
		s.phase = PhaseCompleted
	} else {
		s.phase = PhaseAbandoned
	}

	summary := s.buildSummary(reason)
	if reason == Abandoned && len(summary.Items) == 0 {
		return summary
	}

	res := report.Result{
		SessionID:   s.ID,
		Kind:        s.Kind,
		LessonID:    s.LessonID,
		Score:       int64(summary.Score),
		Accuracy:    summary.Accuracy,
		TimeSpent:   summary.TimeSpent,
		Completed:   reason == Completed,
		AssistsUsed: summary.AssistsUsed,
		Items:       summary.Items,
	}
	if err := s.reporter.Submit(ctx, res); err != nil {
		log.Printf("session %s: report submission failed: %v", s.ID, err)
	}
	return summary
}
