// Package quizfile reads and writes quiz sets and answer records as
// JSON documents, validating them against schemas on the way in.
package quizfile

import (
	"encoding/json"
	"fmt"
	"os"

	"quizforge/internal/attempt"
	"quizforge/internal/quizgen"
)

// SaveQuiz writes the quiz set to path as indented JSON.
func SaveQuiz(path string, quiz *quizgen.QuizSet) error {
	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}

// LoadQuiz reads a quiz set from path, validating it before unmarshal.
func LoadQuiz(path string) (*quizgen.QuizSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	if err := validate(quizSchema, path, raw); err != nil {
		return nil, err
	}
	var quiz quizgen.QuizSet
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, &ErrInvalidDocument{Path: path, Err: err}
	}
	return &quiz, nil
}

// LoadAnswers reads an answer record from path. The document is a flat
// object mapping question IDs to submitted answers.
func LoadAnswers(path string) (attempt.AnswerRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	if err := validate(answersSchema, path, raw); err != nil {
		return nil, err
	}
	var answers attempt.AnswerRecord
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, &ErrInvalidDocument{Path: path, Err: err}
	}
	return answers, nil
}
