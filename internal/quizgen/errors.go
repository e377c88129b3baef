package quizgen

import "fmt"

// ErrInsufficientInput indicates the source text is below the minimum
// length needed to generate meaningful questions. User-correctable.
type ErrInsufficientInput struct {
	Length int // trimmed length of the provided text
	Min    int // required minimum
}

func (e *ErrInsufficientInput) Error() string {
	return fmt.Sprintf("text is too short to generate meaningful questions: %d characters (need at least %d)", e.Length, e.Min)
}

// ErrUnsupportedType indicates an unrecognized quiz type was requested.
// This is a programming or configuration error in the caller.
type ErrUnsupportedType struct {
	Type QuizType
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported quiz type %q", string(e.Type))
}

// ErrEmptyGeneration indicates the text was too sparse or uniform to yield
// a single question, even through the fallback path. User-correctable;
// suggest different source material.
type ErrEmptyGeneration struct {
	Type QuizType
}

func (e *ErrEmptyGeneration) Error() string {
	return fmt.Sprintf("could not generate any %s questions from the provided text; try different content or a different question type", string(e.Type))
}
