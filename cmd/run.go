package cmd

import (
	"fmt"
	"os"

	"github.com/quizarcade/quizarcade/internal/app"
	"github.com/quizarcade/quizarcade/internal/content"
	"github.com/quizarcade/quizarcade/internal/game"
	"github.com/quizarcade/quizarcade/internal/llm"
	"github.com/quizarcade/quizarcade/internal/report"
	"github.com/quizarcade/quizarcade/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	lesson, _ := cmd.Flags().GetString("lesson")
	kind, _ := cmd.Flags().GetString("game")
	if kind != "" && !game.Kind(kind).Valid() {
		return fmt.Errorf("unknown game %q: want recall, ladder, board or match", kind)
	}

	provider, err := buildContentProvider(cmd, eventRepo)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Provider: provider,
		Reporter: report.NewStoreReporter(eventRepo),
		Lesson:   lesson,
		Game:     game.Kind(kind),
	})
}

// buildContentProvider picks the content source: --content-dir serves
// pre-authored JSON lessons, otherwise an LLM generator from the
// QUIZARCADE_* environment.
func buildContentProvider(cmd *cobra.Command, eventRepo store.EventRepo) (content.Provider, error) {
	if dir, _ := cmd.Flags().GetString("content-dir"); dir != "" {
		return content.NewFileProvider(dir), nil
	}

	llmProvider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		return nil, fmt.Errorf("no content source: set QUIZARCADE_LLM_PROVIDER (and its API key) or pass --content-dir")
	}
	return content.NewGenerator(llmProvider, content.DefaultGenConfig()), nil
}
