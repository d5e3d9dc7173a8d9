package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/report"
	"github.com/quizarcade/quizarcade/internal/router"
	"github.com/quizarcade/quizarcade/internal/screen"
	"github.com/quizarcade/quizarcade/internal/screens/play"
	"github.com/quizarcade/quizarcade/internal/ui/components"
	"github.com/quizarcade/quizarcade/internal/ui/layout"
	"github.com/quizarcade/quizarcade/internal/ui/theme"
)

// HomeScreen is the arcade lobby: pick a lesson topic and a game.
type HomeScreen struct {
	provider content.Provider
	reporter report.Reporter

	topic        components.TextInput
	menu         components.Menu
	editingTopic bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. lesson seeds the topic field.
func New(provider content.Provider, reporter report.Reporter, lesson string) *HomeScreen {
	s := &HomeScreen{
		provider: provider,
		reporter: reporter,
		topic:    components.NewTextInput("lesson topic, e.g. solar-system", false, 48),
	}
	s.topic.Model.SetValue(lesson)

	items := make([]components.MenuItem, 0, len(game.Kinds()))
	for _, kind := range game.Kinds() {
		k := kind
		items = append(items, components.MenuItem{
			Label: k.Title(),
			Action: func() tea.Cmd {
				return s.startGame(k)
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) startGame(kind game.Kind) tea.Cmd {
	lesson := strings.TrimSpace(s.topic.Value())
	if lesson == "" {
		lesson = "general-knowledge"
	}
	next := play.New(play.Options{
		Provider: s.provider,
		Reporter: s.reporter,
		LessonID: lesson,
		Kind:     kind,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Lobby"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	if s.editingTopic {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "T", Description: "Topic"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editingTopic {
		switch kmsg.String() {
		case "enter", "esc":
			s.editingTopic = false
			return s, nil
		}
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}

	if kmsg.String() == "t" {
		s.editingTopic = true
		return s, s.topic.Init()
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Q U I Z A R C A D E"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("insert coin · pick a game"))
	b.WriteString("\n\n")

	topicLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topic: ")
	if s.editingTopic {
		b.WriteString(components.ArcadeCard(topicLabel+s.topic.View(), cw))
	} else {
		topic := s.topic.Value()
		if topic == "" {
			topic = "general-knowledge"
		}
		b.WriteString(components.ArcadeCard(topicLabel+theme.Body.Render(topic), cw))
	}
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return components.CabinetFrame(b.String(), width, height)
}
