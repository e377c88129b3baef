package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizforge/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
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

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := st.Attempts().List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(attempts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts yet. Try: quizforge play -f notes.txt")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-19s  %-7s  %-6s  %-5s  %-7s  %s\n",
			"COMPLETED", "TYPE", "SCORE", "PCT", "TIME", "ID")
		for _, a := range attempts {
			mins := int(a.TimeSpent.Minutes())
			secs := int(a.TimeSpent.Seconds()) % 60
			fmt.Fprintf(w, "%-19s  %-7s  %2d/%-3d  %3d%%  %4d:%02d  %s\n",
				a.CompletedAt.Format("2006-01-02 15:04:05"),
				a.QuizType, a.Score, a.TotalQuestions, a.Percentage,
				mins, secs, a.AttemptID)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Maximum attempts to show (0 = all)")
}
