package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eduassist/backend/internal/domain/quiz"
	"github.com/eduassist/backend/internal/notify"
	"github.com/eduassist/backend/internal/store"
	"github.com/eduassist/backend/internal/worker"
)

var ErrSessionNotFound = errors.New("session not found")

// persistOutcome is what an async persistence job reports back.
type persistOutcome struct {
	notice string // shown to the user when err != nil
	err    error
}

// QuizService owns the active quiz sessions and the write path for results.
//
// Completion is a two-step design: the score is applied locally first (pure,
// synchronous), then the result row is handed to the worker pool. A failed
// write becomes a notification; the local session and its result stand.
type QuizService struct {
	store  store.Store
	feed   *notify.Feed
	logger *slog.Logger
	pool   *worker.Pool[persistOutcome]
	now    func() time.Time

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]attempt // session id → attempt
}

// attempt binds an in-flight session to its learner.
type attempt struct {
	userID  string
	session quiz.Session
}

// NewQuizService wires the service and starts the persistence consumer.
// The rand source is the seedable shuffle source for pool building; tests
// pass a fixed seed, production seeds from the clock.
func NewQuizService(st store.Store, feed *notify.Feed, logger *slog.Logger, rng *rand.Rand, now func() time.Time) *QuizService {
	s := &QuizService{
		store:    st,
		feed:     feed,
		logger:   logger,
		pool:     worker.NewPool[persistOutcome](2, 16),
		now:      now,
		rng:      rng,
		sessions: make(map[string]attempt),
	}
	go s.consumeOutcomes()
	return s
}

// consumeOutcomes turns failed persistence writes into notifications.
func (s *QuizService) consumeOutcomes() {
	for result := range s.pool.Results() {
		out := result.Output
		if out.err == nil {
			continue
		}
		s.logger.Error("persistence write failed", "job_id", result.JobID, "error", out.err)
		s.feed.Push(out.notice)
	}
}

// Close stops the persistence pool after draining queued writes.
func (s *QuizService) Close() {
	s.pool.Close()
}

// Start validates the config and opens a fresh session for the learner.
// Any previous session of that learner stays untouched until discarded;
// the new session is the active one.
func (s *QuizService) Start(userID string, cfg quiz.Config) (quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := quiz.Start(cfg, s.rng, s.now())
	if err != nil {
		return quiz.Session{}, err
	}
	s.sessions[session.ID] = attempt{userID: userID, session: session}
	s.logger.Info("quiz session started",
		"session_id", session.ID,
		"topic", cfg.Topic,
		"questions", len(session.Questions),
	)
	return session, nil
}

// Get returns the current value of a session.
func (s *QuizService) Get(sessionID string) (quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.sessions[sessionID]
	if !ok {
		return quiz.Session{}, ErrSessionNotFound
	}
	return a.session, nil
}

// SelectAnswer records an answer and returns the updated session.
func (s *QuizService) SelectAnswer(sessionID string, index int, option string) (quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.sessions[sessionID]
	if !ok {
		return quiz.Session{}, ErrSessionNotFound
	}
	a.session = a.session.SelectAnswer(index, option)
	s.sessions[sessionID] = a
	return a.session, nil
}

// Advance moves the session forward. When the transition completes the
// session, the final score is computed and the result row is queued for
// persistence; the returned Result is non-nil exactly in that case.
func (s *QuizService) Advance(sessionID string) (quiz.Session, *quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.sessions[sessionID]
	if !ok {
		return quiz.Session{}, nil, ErrSessionNotFound
	}

	wasTaking := a.session.State == quiz.StateTaking
	a.session = a.session.Advance()
	s.sessions[sessionID] = a

	if !wasTaking || a.session.State != quiz.StateCompleted {
		return a.session, nil, nil
	}

	result := quiz.Score(a.session)
	s.persistResult(a.userID, a.session, result)
	return a.session, &result, nil
}

// Retreat moves the cursor back one question.
func (s *QuizService) Retreat(sessionID string) (quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.sessions[sessionID]
	if !ok {
		return quiz.Session{}, ErrSessionNotFound
	}
	a.session = a.session.Retreat()
	s.sessions[sessionID] = a
	return a.session, nil
}

// Discard drops a session so the learner can retake. Completed sessions are
// never reopened; a retake always starts from setup.
func (s *QuizService) Discard(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// persistResult queues the append-only history write. Caller holds the lock.
func (s *QuizService) persistResult(userID string, session quiz.Session, result quiz.Result) {
	answers := make([]string, len(session.Questions))
	for i := range session.Questions {
		answers[i] = session.Answers[i] // absent index stays ""
	}
	row := store.QuizResult{
		ID:             uuid.NewString(),
		UserID:         userID,
		Topic:          session.Config.Topic,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Questions:      session.Questions,
		UserAnswers:    answers,
		CreatedAt:      s.now(),
	}
	s.pool.Submit(row.ID, func() persistOutcome {
		return persistOutcome{
			notice: "Failed to save quiz results.",
			err:    s.store.SaveQuizResult(context.Background(), row),
		}
	})
}

// History returns the learner's persisted results, newest first.
func (s *QuizService) History(ctx context.Context, userID string) ([]store.QuizResult, error) {
	return s.store.ListQuizResults(ctx, userID)
}
