package attempt

import (
	"math"
	"time"

	"github.com/google/uuid"

	"quizforge/internal/quizgen"
)

// AnswerRecord maps question IDs to the learner's submitted answers.
type AnswerRecord map[string]string

// Feedback records the outcome of a single question within an attempt.
type Feedback struct {
	QuestionID    string `json:"questionId"`
	Prompt        string `json:"prompt"`
	Concept       string `json:"concept"`
	Submitted     string `json:"submitted"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	Explanation   string `json:"explanation,omitempty"`
}

// Summary is the graded result of one quiz attempt.
type Summary struct {
	AttemptID      string           `json:"attemptId"`
	QuizType       quizgen.QuizType `json:"quizType"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	PointsEarned   int              `json:"pointsEarned"`
	PointsTotal    int              `json:"pointsTotal"`
	TimeSpent      time.Duration    `json:"timeSpent"`
	CompletedAt    time.Time        `json:"completedAt"`
	Feedback       []Feedback       `json:"feedback"`
}

// Grade evaluates every question in the quiz against the submitted
// answers and returns an attempt summary. Questions with no entry in
// answers are graded as empty submissions. Feedback preserves quiz
// question order.
func Grade(quiz *quizgen.QuizSet, answers AnswerRecord, elapsed time.Duration) *Summary {
	s := &Summary{
		AttemptID:      uuid.NewString(),
		QuizType:       quiz.Type,
		TotalQuestions: len(quiz.Questions),
		TimeSpent:      elapsed,
		CompletedAt:    time.Now(),
	}

	for _, q := range quiz.Questions {
		submitted := answers[q.ID]
		correct := Evaluate(q, submitted)

		s.PointsTotal += q.Points
		if correct {
			s.Score++
			s.PointsEarned += q.Points
		}
		s.Feedback = append(s.Feedback, Feedback{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Concept:       q.Concept,
			Submitted:     submitted,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Points:        q.Points,
			Explanation:   q.Explanation,
		})
	}

	if s.TotalQuestions > 0 {
		s.Percentage = int(math.Round(100 * float64(s.Score) / float64(s.TotalQuestions)))
	}
	return s
}
