package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizforge/internal/insights"
	"quizforge/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime per-concept performance",
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

		feedback, err := st.Attempts().AllFeedback(cmd.Context())
		if err != nil {
			return err
		}
		if len(feedback) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts yet. Try: quizforge play -f notes.txt")
			return nil
		}

		stats := insights.ConceptStats(feedback)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-25s  %-7s  %s\n", "CONCEPT", "SCORE", "PCT")
		for _, cs := range stats {
			fmt.Fprintf(w, "%-25s  %2d/%-4d  %3d%%\n", cs.Concept, cs.Correct, cs.Total, cs.Percentage)
		}

		if weak := insights.Weak(stats); len(weak) > 0 {
			fmt.Fprintln(w, "\nNeeds work:")
			for _, cs := range weak {
				fmt.Fprintf(w, "  %s (%d%%)\n", cs.Concept, cs.Percentage)
			}
		}
		if strong := insights.Strong(stats); len(strong) > 0 {
			fmt.Fprintln(w, "\nStrong:")
			for _, cs := range strong {
				fmt.Fprintf(w, "  %s (%d%%)\n", cs.Concept, cs.Percentage)
			}
		}
		return nil
	},
}
