package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"quizforge/internal/attempt"
	"quizforge/internal/quizgen"
)

// AttemptRepo reads and writes graded quiz attempts.
type AttemptRepo struct {
	db *sql.DB
}

// Save inserts a graded attempt. Feedback is serialized as JSON so a
// later read can rebuild per-concept aggregates exactly.
func (r *AttemptRepo) Save(ctx context.Context, s *attempt.Summary) error {
	fj, err := json.Marshal(s.Feedback)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attempts (id, quiz_type, score, total_questions, percentage,
			points_earned, points_total, time_spent_sec, completed_at, feedback_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.AttemptID, string(s.QuizType), s.Score, s.TotalQuestions, s.Percentage,
		s.PointsEarned, s.PointsTotal, int64(s.TimeSpent.Seconds()),
		s.CompletedAt.Unix(), string(fj),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// List returns attempts ordered newest first. A limit of 0 returns all.
func (r *AttemptRepo) List(ctx context.Context, limit int) ([]attempt.Summary, error) {
	q := `
		SELECT id, quiz_type, score, total_questions, percentage,
			points_earned, points_total, time_spent_sec, completed_at, feedback_json
		FROM attempts ORDER BY completed_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []attempt.Summary
	for rows.Next() {
		s, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllFeedback flattens feedback across every stored attempt, oldest
// attempt first, preserving question order within each attempt. Lifetime
// concept stats are computed from this.
func (r *AttemptRepo) AllFeedback(ctx context.Context) ([]attempt.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT feedback_json FROM attempts ORDER BY completed_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	var out []attempt.Feedback
	for rows.Next() {
		var fj string
		if err := rows.Scan(&fj); err != nil {
			return nil, err
		}
		var fb []attempt.Feedback
		if err := json.Unmarshal([]byte(fj), &fb); err != nil {
			return nil, fmt.Errorf("unmarshal feedback: %w", err)
		}
		out = append(out, fb...)
	}
	return out, rows.Err()
}

// Count returns the number of stored attempts.
func (r *AttemptRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`).Scan(&n)
	return n, err
}

func scanAttempt(rows *sql.Rows) (attempt.Summary, error) {
	var (
		s            attempt.Summary
		quizType     string
		timeSpentSec int64
		completedAt  int64
		fj           string
	)
	err := rows.Scan(&s.AttemptID, &quizType, &s.Score, &s.TotalQuestions,
		&s.Percentage, &s.PointsEarned, &s.PointsTotal, &timeSpentSec,
		&completedAt, &fj)
	if err != nil {
		return attempt.Summary{}, err
	}
	s.QuizType = quizgen.QuizType(quizType)
	s.TimeSpent = time.Duration(timeSpentSec) * time.Second
	s.CompletedAt = time.Unix(completedAt, 0)
	if err := json.Unmarshal([]byte(fj), &s.Feedback); err != nil {
		return attempt.Summary{}, fmt.Errorf("unmarshal feedback: %w", err)
	}
	return s, nil
}
