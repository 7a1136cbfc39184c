package quiz

import "math"

// Result is the outcome of scoring a session.
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     int
}

// Score counts the answers that match the correct option of their question.
// Unanswered questions count as incorrect. The function is pure: scoring the
// same session twice yields identical results.
func Score(s Session) Result {
	correct := 0
	for i, q := range s.Questions {
		if answer, ok := s.Answers[i]; ok && answer == q.CorrectOption() {
			correct++
		}
	}
	return Result{
		Score:          correct,
		TotalQuestions: len(s.Questions),
		Percentage:     Percentage(correct, len(s.Questions)),
	}
}

// Percentage returns round(100*score/total), 0 on an empty denominator.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
