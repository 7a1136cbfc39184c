package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/eduassist/backend/internal/domain/quiz"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func config(difficulty quiz.Difficulty, count int) quiz.Config {
	return quiz.Config{Topic: "JavaScript", Difficulty: difficulty, QuestionCount: count}
}

func TestBuildPool_ReturnsRequestedCount(t *testing.T) {
	pool := quiz.BuildPool(config(quiz.DifficultyMedium, 5), newRng())

	if len(pool) != 5 {
		t.Errorf("expected 5 questions, got %d", len(pool))
	}
}

func TestBuildPool_MediumGeneratesTwoPerCategory(t *testing.T) {
	// 2 per category × 4 categories = 8 before truncation
	pool := quiz.BuildPool(config(quiz.DifficultyMedium, 100), newRng())

	if len(pool) != 8 {
		t.Fatalf("expected full pool of 8 questions, got %d", len(pool))
	}

	counts := map[quiz.Category]int{}
	for _, q := range pool {
		counts[q.Category]++
	}
	for _, cat := range quiz.Categories {
		if counts[cat] != 2 {
			t.Errorf("category %s: expected 2 questions, got %d", cat, counts[cat])
		}
	}
}

func TestBuildPool_EasyGeneratesOnePerCategory(t *testing.T) {
	pool := quiz.BuildPool(config(quiz.DifficultyEasy, 100), newRng())

	if len(pool) != 4 {
		t.Fatalf("expected full pool of 4 questions, got %d", len(pool))
	}

	counts := map[quiz.Category]int{}
	for _, q := range pool {
		counts[q.Category]++
	}
	for _, cat := range quiz.Categories {
		if counts[cat] != 1 {
			t.Errorf("category %s: expected 1 question, got %d", cat, counts[cat])
		}
	}
}

func TestBuildPool_CategoryFloor(t *testing.T) {
	// No category may appear twice before every category appears once.
	// With the full hard pool, each category contributes exactly 2 of 8.
	pool := quiz.BuildPool(config(quiz.DifficultyHard, 8), newRng())

	counts := map[quiz.Category]int{}
	for _, q := range pool {
		counts[q.Category]++
	}
	for _, cat := range quiz.Categories {
		if counts[cat] < 1 {
			t.Errorf("category %s contributed no questions", cat)
		}
		if counts[cat] > 2 {
			t.Errorf("category %s contributed %d questions, max is 2", cat, counts[cat])
		}
	}
}

func TestBuildPool_ExhaustionReturnsFullPool(t *testing.T) {
	// 20 requested, only 8 can be generated: return all 8, no error,
	// no duplication.
	pool := quiz.BuildPool(config(quiz.DifficultyMedium, 20), newRng())

	if len(pool) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(pool))
	}

	seen := map[string]bool{}
	for _, q := range pool {
		if seen[q.Prompt] {
			t.Errorf("duplicated question %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestBuildPool_DeterministicWithSeed(t *testing.T) {
	first := quiz.BuildPool(config(quiz.DifficultyMedium, 5), newRng())
	second := quiz.BuildPool(config(quiz.DifficultyMedium, 5), newRng())

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Prompt != second[i].Prompt {
			t.Errorf("question %d differs: %q vs %q", i, first[i].Prompt, second[i].Prompt)
		}
	}
}

func TestBuildPool_FillsTopicIntoTemplates(t *testing.T) {
	pool := quiz.BuildPool(config(quiz.DifficultyMedium, 8), newRng())

	found := false
	for _, q := range pool {
		if q.Prompt == "Which statement about JavaScript is correct?" {
			found = true
			if q.CorrectOption() != "JavaScript follows standardized principles" {
				t.Errorf("unexpected correct option %q", q.CorrectOption())
			}
		}
		if len(q.Options) != 4 {
			t.Errorf("question %q: expected 4 options, got %d", q.Prompt, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("question %q: correct index %d out of range", q.Prompt, q.CorrectIndex)
		}
	}
	if !found {
		t.Error("expected the topic-parameterized fundamentals question in the full pool")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  quiz.Config
		want error
	}{
		{"valid", quiz.Config{Topic: "Go", Difficulty: quiz.DifficultyEasy, QuestionCount: 3}, nil},
		{"empty topic", quiz.Config{Topic: "", Difficulty: quiz.DifficultyEasy, QuestionCount: 3}, quiz.ErrEmptyTopic},
		{"zero count", quiz.Config{Topic: "Go", Difficulty: quiz.DifficultyEasy, QuestionCount: 0}, quiz.ErrInvalidCount},
		{"negative count", quiz.Config{Topic: "Go", Difficulty: quiz.DifficultyEasy, QuestionCount: -1}, quiz.ErrInvalidCount},
		{"bad difficulty", quiz.Config{Topic: "Go", Difficulty: "extreme", QuestionCount: 3}, quiz.ErrBadDifficulty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Validate(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
