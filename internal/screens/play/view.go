package play

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/game"
	sess "github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.confirmQuit {
		return components.CabinetFrame(s.renderQuitConfirm(cw), width, height)
	}

	var content string
	switch {
	case s.sess == nil || s.sess.Phase() == sess.PhaseLoading:
		content = s.renderLoading(cw)
	case s.sess.Phase() == sess.PhaseFailed:
		content = s.renderFailed(cw)
	default:
		switch s.opts.Kind {
		case game.KindRecall:
			content = s.renderRecall(cw)
		case game.KindLadder:
			content = s.renderLadder(cw)
		case game.KindBoard:
			content = s.renderBoard(cw)
		case game.KindMatch:
			content = s.renderMatch(cw)
		}
	}
	return components.CabinetFrame(content, width, height)
}

func (s *PlayScreen) renderLoading(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.opts.Kind.Title()))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Loading " + s.opts.LessonID + "..."))
	return b.String()
}

func (s *PlayScreen) renderFailed(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("No game today"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(s.failMessage()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).
		Render("R to retry, any other key for the lobby"))
	return b.String()
}

func (s *PlayScreen) renderQuitConfirm(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Quit this game?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw).Align(lipgloss.Center).
		Render("Progress so far is kept on your record."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.ArcadeButton("Y  Quit", false, 12)+"  "+
			components.ArcadeButton("N  Keep playing", true, 19)))
	return b.String()
}
