package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizforge/internal/attempt"
	"quizforge/internal/quizfile"
	"quizforge/internal/store"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a set of answers against a saved quiz",
	Long:  "Grade an answers file (question ID to answer) against a saved quiz and print the attempt summary as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		quizPath, _ := cmd.Flags().GetString("quiz")
		answersPath, _ := cmd.Flags().GetString("answers")

		quiz, err := quizfile.LoadQuiz(quizPath)
		if err != nil {
			return err
		}
		answers, err := quizfile.LoadAnswers(answersPath)
		if err != nil {
			return err
		}

		elapsed, _ := cmd.Flags().GetDuration("time")
		summary := attempt.Grade(quiz, answers, elapsed)

		if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
			if err := st.Attempts().Save(cmd.Context(), summary); err != nil {
				fmt.Fprintln(os.Stderr, "Warning: could not save attempt:", err)
			}
		}

		enc, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	gradeCmd.Flags().StringP("quiz", "q", "", "Saved quiz file")
	gradeCmd.Flags().StringP("answers", "a", "", "Answers file")
	gradeCmd.Flags().Duration("time", 0, "Time spent on the attempt, e.g. 4m30s")
	gradeCmd.Flags().Bool("no-save", false, "Do not record the attempt in history")
	gradeCmd.MarkFlagRequired("quiz")
	gradeCmd.MarkFlagRequired("answers")
}
