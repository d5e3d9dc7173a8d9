package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

// ChoiceList renders the four ladder options with selection, lock,
// elimination, poll and reveal states. All game rules live in the
// engine; this component only draws what it is told.
type ChoiceList struct {
	Options []string

	Selected   int    // pending choice, -1 when none
	Eliminated []bool // per-option, removed by a lifeline
	Poll       []int  // per-option audience percentages, nil when unused
	Locked     bool

	Revealed     bool
	CorrectIndex int // meaningful only when Revealed
}

var choiceLabels = []string{"A", "B", "C", "D"}

// MoveUp returns the previous selectable option index.
func (c ChoiceList) MoveUp() int {
	for i := c.Selected - 1; i >= 0; i-- {
		if !c.eliminated(i) {
			return i
		}
	}
	return c.Selected
}

// MoveDown returns the next selectable option index.
func (c ChoiceList) MoveDown() int {
	start := c.Selected + 1
	if c.Selected < 0 {
		start = 0
	}
	for i := start; i < len(c.Options); i++ {
		if !c.eliminated(i) {
			return i
		}
	}
	return c.Selected
}

func (c ChoiceList) eliminated(i int) bool {
	return c.Eliminated != nil && i < len(c.Eliminated) && c.Eliminated[i]
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := choiceLabels[i%len(choiceLabels)]
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		if c.Poll != nil && i < len(c.Poll) && !c.eliminated(i) {
			line += fmt.Sprintf("   %d%%", c.Poll[i])
		}

		switch {
		case c.eliminated(i):
			s += theme.Spent.Render(fmt.Sprintf("  %s)  %s", label, opt)) + "\n"
		case c.Revealed && i == c.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case c.Revealed && i == c.Selected:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected && c.Locked:
			s += theme.Banked.Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
