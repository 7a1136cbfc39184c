package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    topic TEXT NOT NULL,
    score INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    questions TEXT NOT NULL,
    user_answers TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, created_at);

CREATE TABLE IF NOT EXISTS user_progress (
    user_id TEXT NOT NULL,
    content_id TEXT NOT NULL,
    content_type TEXT NOT NULL,
    progress INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (user_id, content_id)
);
`

// SQLiteStore persists quiz results and progress rows in a local SQLite
// database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Quiz results
// ============================================================================

func (s *SQLiteStore) SaveQuizResult(ctx context.Context, result QuizResult) error {
	questionsJSON, err := json.Marshal(result.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	answersJSON, err := json.Marshal(result.UserAnswers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quiz_results (id, user_id, topic, score, total_questions, questions, user_answers, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.UserID, result.Topic, result.Score, result.TotalQuestions,
		string(questionsJSON), string(answersJSON), result.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListQuizResults returns the user's full history, newest first.
func (s *SQLiteStore) ListQuizResults(ctx context.Context, userID string) ([]QuizResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, topic, score, total_questions, questions, user_answers, created_at
		 FROM quiz_results WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var r QuizResult
		var questionsJSON, answersJSON, createdAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Topic, &r.Score, &r.TotalQuestions,
			&questionsJSON, &answersJSON, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(questionsJSON), &r.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions for result %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &r.UserAnswers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for result %s: %w", r.ID, err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for result %s: %w", r.ID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ============================================================================
// User progress
// ============================================================================

// UpsertProgress writes a progress row, replacing any previous value for the
// same (user_id, content_id). The write is idempotent.
func (s *SQLiteStore) UpsertProgress(ctx context.Context, row ProgressRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_progress (user_id, content_id, content_type, progress, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, content_id) DO UPDATE SET
		     content_type = excluded.content_type,
		     progress = excluded.progress,
		     updated_at = excluded.updated_at`,
		row.UserID, row.ContentID, row.ContentType, row.Progress,
		row.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// GetProgress returns all progress values for a user keyed by content id.
func (s *SQLiteStore) GetProgress(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT content_id, progress FROM user_progress WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make(map[string]int)
	for rows.Next() {
		var contentID string
		var value int
		if err := rows.Scan(&contentID, &value); err != nil {
			return nil, err
		}
		progress[contentID] = value
	}
	return progress, rows.Err()
}
