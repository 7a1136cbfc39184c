package quiz_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/eduassist/backend/internal/domain/quiz"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func startSession(t *testing.T, count int) quiz.Session {
	t.Helper()
	session, err := quiz.Start(config(quiz.DifficultyMedium, count), rand.New(rand.NewSource(7)), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session
}

func TestStart_InvalidConfigCreatesNoSession(t *testing.T) {
	_, err := quiz.Start(quiz.Config{Topic: "", Difficulty: quiz.DifficultyEasy, QuestionCount: 3}, rand.New(rand.NewSource(1)), testNow)
	if err != quiz.ErrEmptyTopic {
		t.Errorf("expected ErrEmptyTopic, got %v", err)
	}
}

func TestStart_EntersTakingState(t *testing.T) {
	session := startSession(t, 5)

	if session.State != quiz.StateTaking {
		t.Errorf("expected state taking, got %s", session.State)
	}
	if session.CurrentIndex != 0 {
		t.Errorf("expected cursor at 0, got %d", session.CurrentIndex)
	}
	if len(session.Questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(session.Questions))
	}
	if len(session.Answers) != 0 {
		t.Errorf("expected no answers, got %d", len(session.Answers))
	}
}

func TestAdvance_BlockedWithoutAnswer(t *testing.T) {
	session := startSession(t, 3)

	next := session.Advance()

	if next.CurrentIndex != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", next.CurrentIndex)
	}
	if next.State != quiz.StateTaking {
		t.Errorf("expected state taking, got %s", next.State)
	}
}

func TestAdvance_MovesAfterAnswer(t *testing.T) {
	session := startSession(t, 3)

	session = session.SelectAnswer(0, session.Current().Options[0])
	session = session.Advance()

	if session.CurrentIndex != 1 {
		t.Errorf("expected cursor at 1, got %d", session.CurrentIndex)
	}
}

func TestAdvance_CompletesOnFinalQuestion(t *testing.T) {
	session := startSession(t, 3)

	for i := 0; i < 3; i++ {
		session = session.SelectAnswer(i, session.Questions[i].Options[0])
		session = session.Advance()
	}

	if session.State != quiz.StateCompleted {
		t.Errorf("expected state completed, got %s", session.State)
	}
}

func TestRetreat_FlooredAtFirstQuestion(t *testing.T) {
	session := startSession(t, 3)

	session = session.Retreat()
	if session.CurrentIndex != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", session.CurrentIndex)
	}

	session = session.SelectAnswer(0, session.Current().Options[1])
	session = session.Advance()
	session = session.Retreat()
	if session.CurrentIndex != 0 {
		t.Errorf("expected cursor back at 0, got %d", session.CurrentIndex)
	}
}

func TestCompletedSessionIsReadOnly(t *testing.T) {
	session := startSession(t, 2)
	for i := 0; i < 2; i++ {
		session = session.SelectAnswer(i, session.Questions[i].Options[0])
		session = session.Advance()
	}

	after := session.SelectAnswer(0, "something else")
	if after.Answers[0] != session.Answers[0] {
		t.Error("expected answers to be immutable after completion")
	}

	after = session.Advance()
	if after.State != quiz.StateCompleted || after.CurrentIndex != session.CurrentIndex {
		t.Error("expected advance to be a no-op after completion")
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	session := startSession(t, 3)

	updated := session.SelectAnswer(0, session.Current().Options[2])

	if len(session.Answers) != 0 {
		t.Error("expected original session to keep empty answers")
	}
	if updated.Answers[0] != session.Questions[0].Options[2] {
		t.Error("expected updated session to record the answer")
	}
}

func TestRemainingSeconds(t *testing.T) {
	session := startSession(t, 3)

	if got := session.RemainingSeconds(testNow); got != 300 {
		t.Errorf("expected 300 seconds at start, got %d", got)
	}
	if got := session.RemainingSeconds(testNow.Add(90 * time.Second)); got != 210 {
		t.Errorf("expected 210 seconds, got %d", got)
	}
	if got := session.RemainingSeconds(testNow.Add(10 * time.Minute)); got != 0 {
		t.Errorf("expected 0 after expiry, got %d", got)
	}
}
