package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/report"
	"github.com/quizarcade/quizarcade/internal/router"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/screens/home"
	"github.com/quizarcade/quizarcade/internal/screens/play"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
)

// Options wires the application's collaborators.
type Options struct {
	Provider content.Provider
	Reporter report.Reporter
	Lesson   string

	// Game skips the lobby and starts this kind directly.
	Game game.Kind
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the lobby screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Provider, opts.Reporter, opts.Lesson)
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if !m.opts.Game.Valid() {
		return nil
	}
	next := play.New(play.Options{
		Provider: m.opts.Provider,
		Reporter: m.opts.Reporter,
		LessonID: m.opts.Lesson,
		Kind:     m.opts.Game,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen mid-game owns esc so quitting runs through its
			// session close path.
			if i, ok := m.router.Active().(screen.EscInterceptor); ok && i.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	score := 0
	if sp, ok := active.(screen.ScoreProvider); ok {
		score = sp.Score()
	}

	header := layout.RenderHeader(title, score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
