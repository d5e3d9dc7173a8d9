package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/router"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

// SummaryScreen shows the closed-session results.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a closed session.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Lobby"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.headline(sum)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%s · %s", sum.Kind.Title(), sum.LessonID)))
	b.WriteString("\n\n")

	score := theme.Banked.Render(fmt.Sprintf("▲ %d", sum.Score))
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, score))
	b.WriteString("\n\n")

	mins := int(sum.TimeSpent.Minutes())
	secs := int(sum.TimeSpent.Seconds()) % 60
	stats := fmt.Sprintf("Correct %d/%d   ·   Accuracy %.0f%%   ·   Time %d:%02d",
		sum.Progress.Correct, sum.ItemCount,
		sum.Accuracy*100, mins, secs)
	b.WriteString(theme.Body.Width(cw).Align(lipgloss.Center).Render(stats))
	b.WriteString("\n")

	if sum.Progress.Skipped > 0 {
		b.WriteString(theme.Subtitle.Width(cw).Render(
			fmt.Sprintf("%d skipped", sum.Progress.Skipped)))
		b.WriteString("\n")
	}
	if len(sum.AssistsUsed) > 0 {
		b.WriteString(theme.Subtitle.Width(cw).Render(
			"Lifelines: " + assistNames(sum.AssistsUsed)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.ArcadeButton("Enter  Lobby", true, 16)))

	return components.CabinetFrame(b.String(), width, height)
}

func (s *SummaryScreen) headline(sum *session.Summary) string {
	switch {
	case sum.Kind == game.KindLadder && sum.Won:
		return "★ YOU WON THE LADDER ★"
	case sum.Completed:
		return "GAME COMPLETE"
	default:
		return "GAME OVER"
	}
}

func assistNames(kinds []game.AssistKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		switch k {
		case game.AssistEliminateTwo:
			names[i] = "50:50"
		case game.AssistPollAudience:
			names[i] = "audience poll"
		case game.AssistPhoneHint:
			names[i] = "phone a friend"
		default:
			names[i] = string(k)
		}
	}
	return strings.Join(names, ", ")
}
