package quiz

import (
	"math/rand"

	"github.com/google/uuid"
)

// perCategory returns how many questions each category contributes to the
// pool before truncation.
func perCategory(d Difficulty) int {
	if d == DifficultyEasy {
		return 1
	}
	return 2
}

// BuildPool generates the candidate question set for a validated config.
//
// Sampling is category-first: each category shuffles its own templates and
// contributes perCategory(difficulty) questions, so every category appears
// at least once before any appears twice. The combined pool is shuffled
// again to avoid positional bias, then truncated to QuestionCount.
//
// When QuestionCount exceeds the generated pool the full pool is returned
// as-is. Questions are never duplicated.
//
// The rand source is injected so callers (and tests) control determinism.
func BuildPool(cfg Config, rng *rand.Rand) []Question {
	take := perCategory(cfg.Difficulty)

	var pool []Question
	for _, cat := range Categories {
		tmpls := templatesByCategory[cat]
		order := rng.Perm(len(tmpls))
		for i := 0; i < take && i < len(tmpls); i++ {
			t := tmpls[order[i]]
			prompt, options, explanation := t.instantiate(cfg.Topic)
			pool = append(pool, Question{
				ID:           uuid.NewString(),
				Category:     cat,
				Prompt:       prompt,
				Options:      options,
				CorrectIndex: t.correctIndex,
				Explanation:  explanation,
			})
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if cfg.QuestionCount < len(pool) {
		pool = pool[:cfg.QuestionCount]
	}
	return pool
}
