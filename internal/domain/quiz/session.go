package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle phase of a quiz session.
type State string

const (
	StateSetup     State = "setup"
	StateTaking    State = "taking"
	StateCompleted State = "completed"
)

// TimeAllowance is how long a learner gets for one attempt.
const TimeAllowance = 5 * time.Minute

// Session is one learner's active quiz attempt. Transitions never mutate
// the receiver: every operation returns the next session value, which keeps
// the state machine testable without any rendering or transport layer.
//
// setup → taking → completed, with no way back; a retake is a fresh session.
type Session struct {
	ID           string
	Config       Config
	Questions    []Question
	Answers      map[int]string // question index → selected option text
	CurrentIndex int
	State        State
	StartedAt    time.Time
}

// Start validates the config, builds the question pool and returns a session
// already in the taking state. On a config error no session is created.
func Start(cfg Config, rng *rand.Rand, now time.Time) (Session, error) {
	if err := cfg.Validate(); err != nil {
		return Session{}, err
	}
	return Session{
		ID:           uuid.NewString(),
		Config:       cfg,
		Questions:    BuildPool(cfg, rng),
		Answers:      map[int]string{},
		CurrentIndex: 0,
		State:        StateTaking,
		StartedAt:    now,
	}, nil
}

// Current returns the question under the cursor.
func (s Session) Current() Question {
	return s.Questions[s.CurrentIndex]
}

// Answered reports whether the question at index has a recorded answer.
func (s Session) Answered(index int) bool {
	_, ok := s.Answers[index]
	return ok
}

// RemainingSeconds is the whole seconds left on the attempt timer, floored
// at zero. Purely informational: the session never self-completes on expiry.
func (s Session) RemainingSeconds(now time.Time) int {
	left := TimeAllowance - now.Sub(s.StartedAt)
	if left < 0 {
		return 0
	}
	return int(left / time.Second)
}

// SelectAnswer records the chosen option text for the question at index.
// Completed sessions are read-only; out-of-range indexes are ignored.
func (s Session) SelectAnswer(index int, option string) Session {
	if s.State != StateTaking || index < 0 || index >= len(s.Questions) {
		return s
	}
	answers := make(map[int]string, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[index] = option
	s.Answers = answers
	return s
}

// Advance moves the cursor to the next question, or completes the session
// when the cursor is on the final question. It is a no-op while the current
// question has no recorded answer, so questions cannot be skipped.
func (s Session) Advance() Session {
	if s.State != StateTaking || !s.Answered(s.CurrentIndex) {
		return s
	}
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
		return s
	}
	s.State = StateCompleted
	return s
}

// Retreat moves the cursor to the previous question, floored at the first.
func (s Session) Retreat() Session {
	if s.State != StateTaking || s.CurrentIndex == 0 {
		return s
	}
	s.CurrentIndex--
	return s
}
