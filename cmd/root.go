package cmd

import (
	"github.com/quizarcade/quizarcade/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizarcade",
	Short: "Terminal quiz arcade",
	Long:  "QuizArcade — a terminal arcade of AI-generated quiz games: flashcards, a money ladder, a clue board and pair matching.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZARCADE_DB env var)")
	rootCmd.PersistentFlags().String("content-dir", "", "Serve lesson content from JSON files instead of an LLM")
	rootCmd.PersistentFlags().String("lesson", "general-knowledge", "Default lesson topic")
	rootCmd.PersistentFlags().String("game", "", "Skip the lobby and start a game: recall, ladder, board or match")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZARCADE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
