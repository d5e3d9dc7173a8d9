package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/ladder"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

var choiceKeys = map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "1": 0, "2": 1, "3": 2, "4": 3}

func (s *PlayScreen) handleLadderKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.sess.Ladder()

	switch e.Phase() {
	case ladder.PhaseAsking, ladder.PhaseAnswerSelected:
		return s.handleLadderOpenKey(e, msg)

	case ladder.PhaseLocked:
		return s, nil // waiting for the reveal

	case ladder.PhaseResolved:
		if msg.String() == "enter" {
			if err := e.Advance(); err == nil {
				s.poll, s.hint = nil, ""
				s.ladderRes = nil
			}
		}
		return s, nil

	case ladder.PhaseGameOver:
		if msg.String() == "enter" {
			return s.finish(session.Completed)
		}
		return s, nil
	}
	return s, nil
}

func (s *PlayScreen) handleLadderOpenKey(e *ladder.Engine, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if idx, ok := choiceKeys[key]; ok {
		e.Select(idx) // eliminated options are rejected by the engine
		return s, nil
	}

	switch key {
	case "up", "k", "down", "j":
		list := s.ladderChoices(e)
		idx := list.MoveDown()
		if key == "up" || key == "k" {
			idx = list.MoveUp()
		}
		if idx >= 0 {
			e.Select(idx)
		}
		return s, nil

	case "enter":
		if e.Phase() != ladder.PhaseAnswerSelected {
			return s, nil
		}
		if err := e.Lock(); err != nil {
			return s, nil
		}
		// Snapshot before the reveal; a terminal resolution clears
		// the current question.
		s.ladderQ = e.Current()
		s.ladderSel = e.Selected()
		return s, s.step(checkDelay)

	case "w":
		if _, err := e.WalkAway(); err == nil {
			return s.finish(session.Abandoned)
		}
		return s, nil

	case "e":
		e.UseAssist(game.AssistEliminateTwo)
		return s, nil
	case "p":
		if res, err := e.UseAssist(game.AssistPollAudience); err == nil {
			s.poll = res.Poll
		}
		return s, nil
	case "h":
		if res, err := e.UseAssist(game.AssistPhoneHint); err == nil {
			s.hint = fmt.Sprintf("Your friend says %s.", choiceLabel(res.Suggested))
		}
		return s, nil
	}
	return s, nil
}

func (s *PlayScreen) handleLadderTimer() (screen.Screen, tea.Cmd) {
	e := s.sess.Ladder()
	if e.Phase() != ladder.PhaseLocked {
		return s, nil
	}
	res, err := e.Resolve()
	if err == nil {
		s.ladderRes = &res
	}
	return s, nil
}

func (s *PlayScreen) ladderChoices(e *ladder.Engine) components.ChoiceList {
	q := e.Current()
	if q == nil {
		q = s.ladderQ
	}
	if q == nil {
		return components.ChoiceList{}
	}
	eliminated := make([]bool, len(q.Options))
	for i := range q.Options {
		eliminated[i] = e.Eliminated(i)
	}
	list := components.ChoiceList{
		Options:    q.Options,
		Selected:   e.Selected(),
		Eliminated: eliminated,
		Poll:       s.poll,
		Locked:     e.Phase() == ladder.PhaseLocked,
	}
	if s.ladderRes != nil {
		list.Revealed = true
		list.Selected = s.ladderSel
		list.CorrectIndex = q.Correct
	}
	return list
}

func choiceLabel(idx int) string {
	labels := []string{"A", "B", "C", "D"}
	if idx < 0 || idx >= len(labels) {
		return "?"
	}
	return labels[idx]
}

func (s *PlayScreen) ladderKeyHints() []layout.KeyHint {
	e := s.sess.Ladder()
	switch e.Phase() {
	case ladder.PhaseAsking, ladder.PhaseAnswerSelected:
		hints := []layout.KeyHint{
			{Key: "A-D", Description: "Select"},
			{Key: "Enter", Description: "Lock in"},
			{Key: "W", Description: "Walk away"},
		}
		if e.AssistAvailable(game.AssistEliminateTwo) {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "50:50"})
		}
		if e.AssistAvailable(game.AssistPollAudience) {
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Poll"})
		}
		if e.AssistAvailable(game.AssistPhoneHint) {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Phone"})
		}
		return hints
	case ladder.PhaseGameOver:
		return []layout.KeyHint{{Key: "Enter", Description: "Results"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next question"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) renderLadder(cw int) string {
	e := s.sess.Ladder()
	var b strings.Builder

	if e.Phase() == ladder.PhaseGameOver {
		b.WriteString(s.renderLadderTerminal(e, cw))
		return b.String()
	}

	q := e.Current()
	if q == nil && s.ladderQ != nil {
		q = s.ladderQ
	}
	if q == nil {
		return ""
	}

	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf(
		"Rung %d/%d  ·  worth %d  ·  safe at %d",
		e.Rung()+1, e.Ladder().Len(), e.Ladder().Value(e.Rung()), e.Ladder().SafeValue(e.Rung()))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Render(q.Prompt)
	b.WriteString(components.ArcadeCard(prompt, cw))
	b.WriteString("\n\n")
	b.WriteString(s.ladderChoices(e).View())

	if e.Phase() == ladder.PhaseLocked && s.ladderRes == nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("Locked in. Checking..."))
	}
	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render(s.hint))
	}
	if e.Phase() == ladder.PhaseResolved {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("✓ Correct! Rung %d banked.", e.Rung()+1))))
	}
	return b.String()
}

func (s *PlayScreen) renderLadderTerminal(e *ladder.Engine, cw int) string {
	var b strings.Builder
	if s.ladderQ != nil && s.ladderRes != nil && !s.ladderRes.Correct {
		b.WriteString(s.ladderChoices(e).View())
		b.WriteString("\n")
	}
	if e.Won() {
		b.WriteString(theme.Title.Width(cw).Render("★ LADDER CLEARED ★"))
	} else {
		b.WriteString(theme.Title.Width(cw).Render("Game over"))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Banked.Render(fmt.Sprintf("You take home %d", e.Winnings()))))
	return b.String()
}
