package quizfile

import "fmt"

// ErrInvalidDocument indicates a quiz or answers file failed schema
// validation or could not be parsed as JSON.
type ErrInvalidDocument struct {
	Path string
	Err  error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid document %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }
