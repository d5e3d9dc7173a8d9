package play

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/board"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/session"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

func (s *PlayScreen) boardInputFocused() bool {
	e := s.sess.Board()
	if e == nil {
		return false
	}
	return e.Phase() == board.PhaseAwaitingWager || e.Phase() == board.PhaseClue
}

func (s *PlayScreen) handleBoardKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.sess.Board()

	switch e.Phase() {
	case board.PhasePicking:
		return s.handleBoardPickKey(e, msg)

	case board.PhaseAwaitingWager:
		if msg.String() == "enter" {
			amount, err := s.input.NumericValue()
			if err != nil {
				return s, nil
			}
			if err := e.PlaceWager(amount); err != nil {
				var inv *board.InvalidWagerError
				if errors.As(err, &inv) {
					s.wagerErr = fmt.Sprintf("Wager must be between %d and %d.", inv.Min, inv.Max)
					s.input.Reset()
				}
				return s, nil
			}
			s.wagerErr = ""
			s.input = components.NewTextInput("type your answer...", false, 64)
			return s, s.input.Init()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case board.PhaseClue:
		if msg.String() == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			if res, err := e.Answer(s.input.Value()); err == nil {
				s.boardRes = &res
				s.input.Submit(res.Correct)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case board.PhaseRevealed:
		if msg.String() == "enter" {
			s.boardRes = nil
			s.input = components.NewTextInput("type your answer...", false, 64)
			e.Continue()
			if e.Completed() {
				return s.finish(session.Completed)
			}
			return s, s.input.Init()
		}
		return s, nil
	}
	return s, nil
}

func (s *PlayScreen) handleBoardPickKey(e *board.Engine, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cats := e.Categories()

	switch msg.String() {
	case "left", "h":
		if s.boardCat > 0 {
			s.boardCat--
			s.clampBoardCell(cats)
		}
	case "right", "l":
		if s.boardCat < len(cats)-1 {
			s.boardCat++
			s.clampBoardCell(cats)
		}
	case "up", "k":
		if s.boardCell > 0 {
			s.boardCell--
		}
	case "down", "j":
		if s.boardCell < len(cats[s.boardCat].Cells)-1 {
			s.boardCell++
		}
	case "enter":
		if err := e.Select(s.boardCat, s.boardCell); err != nil {
			return s, nil // consumed cell, stay put
		}
		if e.Phase() == board.PhaseAwaitingWager {
			s.input = components.NewTextInput("enter your wager...", true, 7)
		} else {
			s.input = components.NewTextInput("type your answer...", false, 64)
		}
		return s, s.input.Init()
	}
	return s, nil
}

func (s *PlayScreen) clampBoardCell(cats []board.Category) {
	if max := len(cats[s.boardCat].Cells) - 1; s.boardCell > max {
		s.boardCell = max
	}
}

func (s *PlayScreen) boardKeyHints() []layout.KeyHint {
	e := s.sess.Board()
	switch e.Phase() {
	case board.PhasePicking:
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Enter", Description: "Pick"},
			{Key: "Esc", Description: "Quit"},
		}
	case board.PhaseAwaitingWager:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Wager"},
			{Key: "Enter", Description: "Stake it"},
		}
	case board.PhaseClue:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

func (s *PlayScreen) renderBoard(cw int) string {
	e := s.sess.Board()

	switch e.Phase() {
	case board.PhasePicking:
		return s.renderBoardGrid(e, cw)
	case board.PhaseAwaitingWager:
		return s.renderBoardWager(e, cw)
	default:
		return s.renderBoardClue(e, cw)
	}
}

func (s *PlayScreen) renderBoardGrid(e *board.Engine, cw int) string {
	cats := e.Categories()
	colWidth := cw/len(cats) - 2
	if colWidth < 8 {
		colWidth = 8
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%d clues remaining", e.Remaining())))
	b.WriteString("\n\n")

	var cols []string
	for ci, cat := range cats {
		var col strings.Builder
		col.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			Width(colWidth).
			Align(lipgloss.Center).
			Render(cat.Name))
		col.WriteString("\n")
		for ri, cell := range cat.Cells {
			label := fmt.Sprintf("%d", cell.Value)
			cellStyle := lipgloss.NewStyle().
				Width(colWidth).
				Align(lipgloss.Center).
				Foreground(theme.Accent)
			switch {
			case cell.Consumed && cell.WasCorrect:
				label = "✓"
				cellStyle = cellStyle.Foreground(theme.Success)
			case cell.Consumed:
				label = "✗"
				cellStyle = cellStyle.Foreground(theme.TextDim)
			case cell.Wagered:
				label = "? " + label
			}
			if ci == s.boardCat && ri == s.boardCell {
				cellStyle = cellStyle.
					Background(theme.BgCard).
					Foreground(theme.Primary).
					Bold(true)
			}
			col.WriteString(cellStyle.Render(label))
			col.WriteString("\n")
		}
		cols = append(cols, col.String())
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, grid))
	return b.String()
}

func (s *PlayScreen) renderBoardWager(e *board.Engine, cw int) string {
	min, max := e.WagerBounds()
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("⚡ WAGER CLUE ⚡"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw).Align(lipgloss.Center).Render(
		fmt.Sprintf("Stake between %d and %d on the next clue.", min, max)))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	if s.wagerErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Incorrect.Render(s.wagerErr)))
	}
	return b.String()
}

func (s *PlayScreen) renderBoardClue(e *board.Engine, cw int) string {
	cell := e.Current()
	if cell == nil {
		return ""
	}

	var b strings.Builder
	header := e.Categories()[0].Name
	for _, cat := range e.Categories() {
		for i := range cat.Cells {
			if &cat.Cells[i] == cell {
				header = cat.Name
			}
		}
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(header))
	b.WriteString("\n")

	clue := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Render(cell.Item.Prompt)
	b.WriteString(components.ArcadeCard(clue, cw))
	b.WriteString("\n\n")

	if e.Phase() == board.PhaseClue {
		b.WriteString(s.input.View())
		return b.String()
	}

	// Revealed.
	if s.boardRes != nil && s.boardRes.Correct {
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d", s.boardRes.Delta))))
	} else {
		delta := 0
		if s.boardRes != nil {
			delta = s.boardRes.Delta
		}
		verdict := "✗ " + cell.Item.Answer
		if delta < 0 {
			verdict = fmt.Sprintf("✗ %s  (%d)", cell.Item.Answer, delta)
		}
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Incorrect.Render(verdict)))
	}
	return b.String()
}
