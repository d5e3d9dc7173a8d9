package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/match"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

func (s *PlayScreen) handleMatchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.sess.Match()

	if e.Phase() == match.PhaseDone {
		return s.finish(session.Completed)
	}
	if e.Phase() != match.PhaseSelecting {
		return s, nil // mismatch flash in progress
	}

	cards := e.Cards(s.matchSide)
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		s.matchSide = toggleSide(s.matchSide, msg.String())
		s.clampMatchIdx(e)

	case "up", "k":
		for i := s.matchIdx - 1; i >= 0; i-- {
			if !cards[i].Matched {
				s.matchIdx = i
				break
			}
		}
	case "down", "j":
		for i := s.matchIdx + 1; i < len(cards); i++ {
			if !cards[i].Matched {
				s.matchIdx = i
				break
			}
		}

	case "enter", "space":
		if err := e.Select(s.matchSide, s.matchIdx); err != nil {
			return s, nil
		}
		if e.Phase() != match.PhaseChecking {
			return s, nil
		}
		res, err := e.ResolveCheck()
		if err != nil {
			return s, nil
		}
		if !res.Matched {
			return s, s.step(mismatchDelay)
		}
		if e.Completed() {
			return s.finish(session.Completed)
		}
	}
	return s, nil
}

func (s *PlayScreen) handleMatchTimer() (screen.Screen, tea.Cmd) {
	s.sess.Match().ClearMismatch()
	return s, nil
}

// clampMatchIdx keeps the cursor on an unmatched card of the active side.
func (s *PlayScreen) clampMatchIdx(e *match.Engine) {
	cards := e.Cards(s.matchSide)
	if s.matchIdx >= len(cards) {
		s.matchIdx = len(cards) - 1
	}
	if s.matchIdx >= 0 && !cards[s.matchIdx].Matched {
		return
	}
	for i, c := range cards {
		if !c.Matched {
			s.matchIdx = i
			return
		}
	}
}

func (s *PlayScreen) matchKeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch column"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) renderMatch(cw int) string {
	e := s.sess.Match()
	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf(
		"%d/%d matched  ·  %d attempts",
		e.MatchedPairs(), e.Size(), e.Attempts())))
	b.WriteString("\n\n")

	colWidth := cw/2 - 3
	left := s.renderMatchColumn(e, match.SideLeft, colWidth)
	right := s.renderMatchColumn(e, match.SideRight, colWidth)
	cols := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, cols))
	return b.String()
}

func (s *PlayScreen) renderMatchColumn(e *match.Engine, side match.Side, width int) string {
	var b strings.Builder
	selected := e.Selected(side)

	for i, card := range e.Cards(side) {
		style := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
		prefix := "  "
		switch {
		case card.Matched:
			style = style.Foreground(theme.TextDim).Strikethrough(true)
		case card.Mismatched:
			style = style.Foreground(theme.Error)
		case i == selected:
			style = style.Foreground(theme.Accent).Bold(true)
			prefix = "● "
		}
		if side == s.matchSide && i == s.matchIdx && !card.Matched {
			prefix = "▸ "
			if i != selected {
				style = style.Foreground(theme.Primary)
			}
		}
		b.WriteString(style.Render(prefix + card.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func toggleSide(side match.Side, key string) match.Side {
	switch key {
	case "left", "h":
		return match.SideLeft
	case "right", "l":
		return match.SideRight
	default: // tab toggles
		if side == match.SideLeft {
			return match.SideRight
		}
		return match.SideLeft
	}
}
