package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizforge/internal/app"
	"quizforge/internal/quizfile"
	"quizforge/internal/quizgen"
	"quizforge/internal/screens/quiz"
	"quizforge/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a quiz interactively",
	Long:  "Take a quiz in the terminal. Loads a saved quiz with --quiz, or generates one on the fly from --file/stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			set *quizgen.QuizSet
			err error
		)
		if path, _ := cmd.Flags().GetString("quiz"); path != "" {
			set, err = quizfile.LoadQuiz(path)
		} else {
			set, err = buildQuiz(cmd)
		}
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return app.Run(quiz.New(set, st.Attempts()))
	},
}

func init() {
	addGenerateFlags(playCmd)
	playCmd.Flags().StringP("quiz", "q", "", "Saved quiz file to play instead of generating")
}
