package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/recall"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

func (s *PlayScreen) handleRecallKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.sess.Recall()

	switch e.Phase() {
	case recall.PhasePrompted:
		switch msg.String() {
		case "enter":
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			e.Submit(s.input.Value())
			s.input.Submit(e.LastCorrect())
			return s, nil
		case "tab":
			e.Skip()
			s.input.Reset()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case recall.PhaseRevealed:
		if msg.String() == "enter" {
			s.input.Reset()
			if !e.Advance() && !e.CanReview() {
				return s.finish(session.Completed)
			}
		}
		return s, nil

	case recall.PhaseDone:
		if !e.CanReview() {
			return s.finish(session.Completed)
		}
		switch msg.String() {
		case "y", "Y":
			if err := e.StartReview(); err == nil {
				s.input.Reset()
			}
		case "n", "N":
			e.DeclineReview()
			return s.finish(session.Completed)
		}
		return s, nil
	}
	return s, nil
}

func (s *PlayScreen) recallKeyHints() []layout.KeyHint {
	e := s.sess.Recall()
	switch e.Phase() {
	case recall.PhasePrompted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	case recall.PhaseDone:
		return []layout.KeyHint{
			{Key: "Y", Description: "Review skipped"},
			{Key: "N", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next card"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) renderRecall(cw int) string {
	e := s.sess.Recall()
	var b strings.Builder

	pass := "Deck"
	if e.Reviewing() {
		pass = "Review"
	}
	done := e.Size() - e.Remaining()
	header := fmt.Sprintf("%s  %d/%d", pass, done+1, e.Size())
	if e.Phase() == recall.PhaseDone {
		header = fmt.Sprintf("%s complete", pass)
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(header))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar{
		Percent: float64(done) / float64(e.Size()),
		Width:   cw - 4,
	}.View())
	b.WriteString("\n\n")

	if e.Phase() == recall.PhaseDone {
		b.WriteString(theme.Title.Width(cw).Render("Deck cleared!"))
		b.WriteString("\n\n")
		if e.CanReview() {
			b.WriteString(theme.Body.Width(cw).Align(lipgloss.Center).
				Render("Replay the cards you skipped?"))
			b.WriteString("\n\n")
			b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
				components.ArcadeButton("Y  Review", true, 14)+"  "+
					components.ArcadeButton("N  Finish", false, 14)))
		}
		return b.String()
	}

	card := e.Current()
	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Render(card.Prompt)
	b.WriteString(components.ArcadeCard(prompt, cw))
	b.WriteString("\n\n")

	if e.Phase() == recall.PhasePrompted {
		b.WriteString(s.input.View())
		return b.String()
	}

	// Revealed: show the reference answer and the verdict.
	verdict := theme.Correct.Render("✓ Correct")
	if !e.LastCorrect() {
		verdict = theme.Incorrect.Render("✗ " + card.Answer)
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, verdict))
	if e.LastCorrect() {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(cw).Render(card.Answer))
	}
	return b.String()
}
