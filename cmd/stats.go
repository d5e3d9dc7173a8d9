package cmd

import (
	"fmt"

	"github.com/quizarcade/quizarcade/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		stats, err := repo.StatsByKind(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No games on record yet. Run `quizarcade play` first.")
			return nil
		}

		fmt.Printf("%-14s %8s %10s %10s %10s %10s\n",
			"GAME", "PLAYED", "FINISHED", "ACCURACY", "BEST", "TIME")
		for _, s := range stats {
			fmt.Printf("%-14s %8d %10d %9.0f%% %10d %9dm\n",
				s.Kind, s.Sessions, s.Completed, s.AvgAccuracy*100,
				s.BestScore, s.TotalSecs/60)
		}

		usage, err := repo.TokenUsageByProvider(ctx)
		if err != nil {
			return fmt.Errorf("load token usage: %w", err)
		}
		if len(usage) > 0 {
			fmt.Printf("\n%-14s %10s %12s %12s\n",
				"PROVIDER", "REQUESTS", "TOKENS IN", "TOKENS OUT")
			for _, u := range usage {
				fmt.Printf("%-14s %10d %12d %12d\n",
					u.Provider, u.Requests, u.InputTokens, u.OutputTokens)
			}
		}
		return nil
	},
}
