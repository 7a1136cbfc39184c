package progress

import (
	"time"

	"github.com/eduassist/backend/internal/domain/quiz"
	"github.com/eduassist/backend/internal/store"
)

// Growth compares the last 7 days against the 7 days before them. The
// windows roll from "now" rather than snapping to calendar weeks.
type Growth struct {
	Quizzes int // quiz-count delta between the two windows
	Score   int // average-score delta in percentage points
}

// Stats is the aggregate view of one learner's quiz history. It is fully
// recomputed from the history on every call, so there is no stored state
// to drift.
type Stats struct {
	TotalQuizzes   int
	AverageScore   int // percent
	CurrentStreak  int // consecutive calendar days ending today
	WeeklyProgress int // percent, saturating at 100
	WeeklyGrowth   Growth
}

// Compute aggregates a learner's full quiz history as of now.
func Compute(history []store.QuizResult, now time.Time) Stats {
	stats := Stats{TotalQuizzes: len(history)}
	if len(history) == 0 {
		return stats
	}

	totalScore, totalQuestions := 0, 0
	for _, r := range history {
		totalScore += r.Score
		totalQuestions += r.TotalQuestions
	}
	stats.AverageScore = quiz.Percentage(totalScore, totalQuestions)

	stats.CurrentStreak = streak(history, now)

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var thisWeek, lastWeek []store.QuizResult
	for _, r := range history {
		switch {
		case !r.CreatedAt.Before(weekAgo):
			thisWeek = append(thisWeek, r)
		case !r.CreatedAt.Before(twoWeeksAgo):
			lastWeek = append(lastWeek, r)
		}
	}

	stats.WeeklyProgress = min(100, quiz.Percentage(len(thisWeek), 7))
	stats.WeeklyGrowth = Growth{
		Quizzes: len(thisWeek) - len(lastWeek),
		Score:   windowAverage(thisWeek) - windowAverage(lastWeek),
	}
	return stats
}

// windowAverage is the average score percentage over one window, 0 when the
// window holds no questions.
func windowAverage(window []store.QuizResult) int {
	score, questions := 0, 0
	for _, r := range window {
		score += r.Score
		questions += r.TotalQuestions
	}
	return quiz.Percentage(score, questions)
}

// streak counts consecutive calendar days with at least one result, ending
// today. No result today means no streak; multiple results on one day count
// once. The check is date-based, never time-of-day based.
func streak(history []store.QuizResult, now time.Time) int {
	days := make(map[string]bool, len(history))
	for _, r := range history {
		days[dayKey(r.CreatedAt)] = true
	}

	if !days[dayKey(now)] {
		return 0
	}

	count := 1
	for {
		prior := now.AddDate(0, 0, -count)
		if !days[dayKey(prior)] {
			return count
		}
		count++
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
