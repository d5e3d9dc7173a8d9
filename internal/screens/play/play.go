package play

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/ladder"
	"github.com/quizarcade/quizarcade/internal/match"
	"github.com/quizarcade/quizarcade/internal/recall"
	"github.com/quizarcade/quizarcade/internal/report"
	"github.com/quizarcade/quizarcade/internal/router"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/screens/summary"
	sess "github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
)

// checkDelay is the suspense pause between locking an answer and the
// reveal. mismatchDelay mirrors the matching engine's feedback flash.
const (
	checkDelay    = 900 * time.Millisecond
	mismatchDelay = 900 * time.Millisecond
)

// Options wires a play screen to its collaborators.
type Options struct {
	Provider content.Provider
	Reporter report.Reporter
	LessonID string
	Kind     game.Kind
}

// loadedMsg carries the content fetch outcome for one session back to
// the event loop, where the session applies it.
type loadedMsg struct {
	id      string
	payload *content.Payload
	err     error
}

// timerMsg is a scheduled engine step (reveal or mismatch clear). The
// id and gen guard it: a tick whose session was closed, or that was
// superseded by a later state change, is dropped.
type timerMsg struct {
	id  string
	gen int
}

// PlayScreen drives one game session.
type PlayScreen struct {
	opts Options
	sess *sess.Session

	input components.TextInput

	// Ladder lifeline feedback and reveal snapshot. The snapshot is
	// captured before Resolve because a terminal resolution has no
	// current question anymore.
	poll       []int
	hint       string
	ladderQ    *game.Item
	ladderSel  int
	ladderRes  *ladder.Resolution

	// Board grid cursor and last resolution.
	boardCat  int
	boardCell int
	boardRes  *board.Resolution
	wagerErr  string

	// Match column cursor.
	matchSide match.Side
	matchIdx  int

	confirmQuit bool
	gen         int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.ScoreProvider = (*PlayScreen)(nil)

// New creates a play screen. The session starts loading on Init.
func New(opts Options) *PlayScreen {
	return &PlayScreen{
		opts:  opts,
		input: components.NewTextInput("type your answer...", false, 64),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	gameSession, err := sess.New(s.opts.LessonID, s.opts.Kind, sess.Options{
		Provider: s.opts.Provider,
		Reporter: s.opts.Reporter,
	})
	if err != nil {
		return func() tea.Msg { return loadedMsg{err: err} }
	}
	s.sess = gameSession

	// The fetch runs off the event loop; the session itself is only
	// touched from Update, so closing mid-load cannot race it.
	fetch, err := gameSession.BeginLoad(context.Background())
	if err != nil {
		return func() tea.Msg { return loadedMsg{id: gameSession.ID, err: err} }
	}

	return tea.Batch(
		s.input.Init(),
		func() tea.Msg {
			payload, err := fetch()
			return loadedMsg{id: gameSession.ID, payload: payload, err: err}
		},
	)
}

func (s *PlayScreen) Title() string {
	return s.opts.Kind.Title()
}

// Score feeds the header. Zero until the session is active.
func (s *PlayScreen) Score() int {
	if s.sess == nil || s.sess.Phase() != sess.PhaseActive {
		return 0
	}
	return s.sess.Score()
}

// InterceptEsc keeps esc inside the screen so quitting runs through the
// session close path instead of a bare router pop.
func (s *PlayScreen) InterceptEsc() bool {
	return s.sess != nil && !s.sess.Closed()
}

// step schedules a timerMsg for the current generation.
func (s *PlayScreen) step(d time.Duration) tea.Cmd {
	id := s.sess.ID
	gen := s.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id, gen: gen}
	})
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case timerMsg:
		if s.sess == nil || msg.id != s.sess.ID || msg.gen != s.gen || s.sess.Closed() {
			return s, nil
		}
		return s.handleTimer()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputFocused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil || msg.id != s.sess.ID {
		return s, nil
	}
	// Failure state is rendered from the session phase.
	s.sess.ApplyLoad(msg.payload, msg.err)
	if s.opts.Kind == game.KindBoard && s.sess.Phase() == sess.PhaseActive {
		s.boardCat, s.boardCell = 0, 0
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, popCmd()
	}

	if s.confirmQuit {
		switch msg.String() {
		case "y", "Y":
			return s.finish(sess.Abandoned)
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.Phase() {
	case sess.PhaseLoading:
		if msg.String() == "esc" {
			return s.finish(sess.Abandoned)
		}
		return s, nil
	case sess.PhaseFailed:
		// Any key returns to the lobby; r retries via a fresh start.
		if msg.String() == "r" {
			return s.retry()
		}
		return s, popCmd()
	case sess.PhaseActive:
		if msg.String() == "esc" {
			s.confirmQuit = true
			return s, nil
		}
		return s.handleGameKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleGameKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.opts.Kind {
	case game.KindRecall:
		return s.handleRecallKey(msg)
	case game.KindLadder:
		return s.handleLadderKey(msg)
	case game.KindBoard:
		return s.handleBoardKey(msg)
	case game.KindMatch:
		return s.handleMatchKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleTimer() (screen.Screen, tea.Cmd) {
	switch s.opts.Kind {
	case game.KindLadder:
		return s.handleLadderTimer()
	case game.KindMatch:
		return s.handleMatchTimer()
	}
	return s, nil
}

// retry replaces this screen with a fresh one for the same game.
func (s *PlayScreen) retry() (screen.Screen, tea.Cmd) {
	next := New(s.opts)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// finish closes the session exactly once and moves on: to the summary
// screen when there is anything to show, otherwise back to the lobby.
func (s *PlayScreen) finish(reason sess.CloseReason) (screen.Screen, tea.Cmd) {
	s.gen++ // orphan any in-flight timers

	sum := s.sess.Close(context.Background(), reason)
	if sum == nil || len(sum.Items) == 0 {
		return s, popCmd()
	}

	next := summary.New(sum)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *PlayScreen) inputFocused() bool {
	if s.sess == nil || s.sess.Phase() != sess.PhaseActive {
		return false
	}
	switch s.opts.Kind {
	case game.KindRecall:
		e := s.sess.Recall()
		return e != nil && e.Phase() == recall.PhasePrompted
	case game.KindBoard:
		return s.boardInputFocused()
	}
	return false
}

func (s *PlayScreen) failMessage() string {
	if s.sess == nil {
		return "could not start session"
	}
	if s.sess.FailReason() == sess.FailEmptyContent {
		return "This lesson has no content for " + s.opts.Kind.Title() + "."
	}
	err := s.sess.FailErr()
	var fetchErr *content.FetchError
	if errors.As(err, &fetchErr) {
		return "Could not load content: " + fetchErr.Err.Error()
	}
	if err != nil {
		return "Could not load content: " + err.Error()
	}
	return "Could not load content."
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if s.sess == nil || s.sess.Phase() == sess.PhaseLoading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.sess.Phase() != sess.PhaseActive {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "any key", Description: "Lobby"},
		}
	}

	switch s.opts.Kind {
	case game.KindRecall:
		return s.recallKeyHints()
	case game.KindLadder:
		return s.ladderKeyHints()
	case game.KindBoard:
		return s.boardKeyHints()
	case game.KindMatch:
		return s.matchKeyHints()
	}
	return nil
}
