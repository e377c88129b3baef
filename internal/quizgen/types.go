package quizgen

// Question represents a single generated quiz item ready for display.
// Questions are created once by a builder and are immutable afterwards.
type Question struct {
	// ID is type-prefixed and sequence-numbered, e.g. "mcq-3".
	// Fallback-generated questions carry a distinct tag ("mcq-fallback-1")
	// so they never collide with primary-builder ids.
	ID string `json:"id"`

	// Type is the question format: mcq, fillup, or qa.
	Type QuizType `json:"type"`

	// Prompt is the text shown to the learner. For mcq and fillup it
	// contains blank markers where words were removed.
	Prompt string `json:"prompt"`

	// Options is populated only for mcq questions. Contains exactly 4
	// unique entries, one of which equals CorrectAnswer.
	Options []string `json:"options,omitempty"`

	// CorrectAnswer is the canonical answer. For fillup with multiple
	// blanks it is the comma-joined list of blanked words in their
	// original sentence order.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is shown after the learner answers. Always present.
	Explanation string `json:"explanation"`

	// Difficulty the question was built at.
	Difficulty Difficulty `json:"difficulty"`

	// Concept is the extracted concept label this question is tagged
	// with, used for grouping in performance reports.
	Concept string `json:"concept"`

	// Points awarded for a correct answer, driven by difficulty and type.
	Points int `json:"points"`
}

// QuizSet is an ordered sequence of questions produced by one generation
// request. It is never mutated after creation; a retake reuses the same set.
type QuizSet struct {
	// Title is an optional caller-supplied label for the set.
	Title string `json:"title,omitempty"`

	Type       QuizType   `json:"type"`
	Difficulty Difficulty `json:"difficulty"`

	// SourceLength is the trimmed character count of the source text the
	// set was generated from.
	SourceLength int `json:"sourceLength"`

	// Seed is the random seed the set was generated with. Re-running the
	// same request with this seed reproduces the set exactly.
	Seed uint64 `json:"seed"`

	Questions []Question `json:"questions"`
}

// QuizType identifies the question format of a generation request.
type QuizType string

const (
	TypeMCQ    QuizType = "mcq"
	TypeFillup QuizType = "fillup"
	TypeQA     QuizType = "qa"
)

// Difficulty is the requested difficulty level for generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Role is an optional hint about who requested the quiz. It affects
// explanation verbosity only, never correctness logic.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Request holds all inputs for one generation call.
type Request struct {
	// Text is the raw source text, already extracted from whatever
	// document it came from.
	Text string

	// Type selects which builder runs.
	Type QuizType

	// Count is the number of questions requested.
	Count int

	// Difficulty for all questions in the set.
	Difficulty Difficulty

	// Role of the requester. Zero value behaves as RoleStudent.
	Role Role

	// Title is an optional label carried onto the generated set.
	Title string
}

// points returns the point value for a correct answer.
// MCQ and fillup score 1/2/3 for easy/medium/hard; short-answer questions
// score 2/3/5 because free-text answers take more effort.
func points(t QuizType, d Difficulty) int {
	if t == TypeQA {
		switch d {
		case DifficultyEasy:
			return 2
		case DifficultyHard:
			return 5
		default:
			return 3
		}
	}
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}
