package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quizforge/internal/quizfile"
	"quizforge/internal/quizgen"
)

const (
	minCount = 5
	maxCount = 30
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz from text",
	Long:  "Generate a quiz from a text file (or stdin) and write it as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		quiz, err := buildQuiz(cmd)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			enc, err := quizJSON(quiz)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(enc))
			return nil
		}

		if err := quizfile.SaveQuiz(out, quiz); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d %s questions to %s (seed %d)\n",
			len(quiz.Questions), quiz.Type, out, quiz.Seed)
		return nil
	},
}

func init() {
	addGenerateFlags(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
}

// addGenerateFlags registers the flags shared by generate and play.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Source text file (default: stdin)")
	cmd.Flags().StringP("type", "t", "mcq", "Question type: mcq, fillup, or qa")
	cmd.Flags().IntP("count", "n", 5, fmt.Sprintf("Number of questions (%d-%d)", minCount, maxCount))
	cmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible quizzes (0 = random)")
	cmd.Flags().String("role", "student", "Requester role: student or teacher")
	cmd.Flags().String("title", "", "Optional title for the quiz")
}

// buildQuiz reads the source text and runs the generator with the
// command's flags.
func buildQuiz(cmd *cobra.Command) (*quizgen.QuizSet, error) {
	req, seed, err := requestFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	g := quizgen.New(quizgen.Config{Seed: seed})
	return g.Generate(req)
}

func requestFromFlags(cmd *cobra.Command) (quizgen.Request, uint64, error) {
	var req quizgen.Request

	typ, _ := cmd.Flags().GetString("type")
	switch quizgen.QuizType(typ) {
	case quizgen.TypeMCQ, quizgen.TypeFillup, quizgen.TypeQA:
		req.Type = quizgen.QuizType(typ)
	default:
		return req, 0, fmt.Errorf("unknown question type %q (want mcq, fillup, or qa)", typ)
	}

	diff, _ := cmd.Flags().GetString("difficulty")
	switch quizgen.Difficulty(diff) {
	case quizgen.DifficultyEasy, quizgen.DifficultyMedium, quizgen.DifficultyHard:
		req.Difficulty = quizgen.Difficulty(diff)
	default:
		return req, 0, fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", diff)
	}

	role, _ := cmd.Flags().GetString("role")
	switch quizgen.Role(role) {
	case quizgen.RoleStudent, quizgen.RoleTeacher:
		req.Role = quizgen.Role(role)
	default:
		return req, 0, fmt.Errorf("unknown role %q (want student or teacher)", role)
	}

	count, _ := cmd.Flags().GetInt("count")
	if count < minCount || count > maxCount {
		return req, 0, fmt.Errorf("count %d out of range (%d-%d)", count, minCount, maxCount)
	}
	req.Count = count

	text, err := readSource(cmd)
	if err != nil {
		return req, 0, err
	}
	req.Text = text
	req.Title, _ = cmd.Flags().GetString("title")

	seed, _ := cmd.Flags().GetUint64("seed")
	return req, seed, nil
}

func quizJSON(quiz *quizgen.QuizSet) ([]byte, error) {
	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal quiz: %w", err)
	}
	return data, nil
}

// readSource loads quiz source text from --file or stdin.
func readSource(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read source: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
