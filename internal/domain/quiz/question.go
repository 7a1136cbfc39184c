package quiz

import "errors"

// Difficulty controls how many questions each category contributes
// to the generated pool.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Category is one of the four fixed question styles used to guarantee
// topical breadth in a generated pool.
type Category string

const (
	CategoryFundamentals   Category = "fundamentals"
	CategoryBestPractices  Category = "best-practices"
	CategoryImplementation Category = "implementation"
	CategoryProblemSolving Category = "problem-solving"
)

// Categories lists all question categories in declaration order.
var Categories = []Category{
	CategoryFundamentals,
	CategoryBestPractices,
	CategoryImplementation,
	CategoryProblemSolving,
}

// Question is a single multiple-choice question. Immutable once built.
type Question struct {
	ID           string
	Category     Category
	Prompt       string
	Options      []string // always 4 entries
	CorrectIndex int
	Explanation  string
}

// CorrectOption returns the text of the correct answer.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// Config is the caller-supplied quiz configuration, validated before
// any pool building happens.
type Config struct {
	Topic         string
	Difficulty    Difficulty
	QuestionCount int
}

var (
	ErrEmptyTopic    = errors.New("quiz: topic cannot be empty")
	ErrInvalidCount  = errors.New("quiz: question count must be positive")
	ErrBadDifficulty = errors.New("quiz: unknown difficulty")
)

// Validate checks the configuration at the setup boundary.
// An invalid config never produces a partial session.
func (c Config) Validate() error {
	if c.Topic == "" {
		return ErrEmptyTopic
	}
	if c.QuestionCount <= 0 {
		return ErrInvalidCount
	}
	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return ErrBadDifficulty
	}
}
