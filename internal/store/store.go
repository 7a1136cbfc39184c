package store

import (
	"context"
	"errors"
	"time"

	"github.com/eduassist/backend/internal/domain/quiz"
)

var (
	ErrNotFound = errors.New("not found")
)

// QuizResult is one persisted quiz attempt. Rows are append-only: a result
// is never mutated after creation.
type QuizResult struct {
	ID             string
	UserID         string
	Topic          string
	Score          int
	TotalQuestions int
	Questions      []quiz.Question
	UserAnswers    []string // by question position; "" = unanswered
	CreatedAt      time.Time
}

// ProgressRow is one user_progress record. ContentID encodes the entity:
// a course id, "{course}-{module}-{unit}", or "{step}-{resourceTitle}".
type ProgressRow struct {
	UserID      string
	ContentID   string
	ContentType string
	Progress    int // 0-100
	UpdatedAt   time.Time
}

// Store is the persistence collaborator. Quiz results are insert-only;
// progress rows are upserted keyed by (user_id, content_id), which is what
// serializes concurrent writes for the same content.
type Store interface {
	SaveQuizResult(ctx context.Context, result QuizResult) error
	ListQuizResults(ctx context.Context, userID string) ([]QuizResult, error)

	UpsertProgress(ctx context.Context, row ProgressRow) error
	GetProgress(ctx context.Context, userID string) (map[string]int, error)

	Close() error
}
