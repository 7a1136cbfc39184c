package progress

import (
	"github.com/dustin/go-humanize"

	"github.com/eduassist/backend/internal/domain/quiz"
	"github.com/eduassist/backend/internal/store"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Topic   string `json:"topic"`
	Score   int    `json:"score"` // percent
	WhenAgo string `json:"date"`  // humanized relative time
}

// RecentActivity formats the newest results for the dashboard feed.
// History is expected newest-first, as the store returns it.
func RecentActivity(history []store.QuizResult) []Activity {
	n := len(history)
	if n > recentActivityLimit {
		n = recentActivityLimit
	}
	activities := make([]Activity, 0, n)
	for _, r := range history[:n] {
		activities = append(activities, Activity{
			ID:      r.ID,
			Type:    "quiz",
			Topic:   r.Topic,
			Score:   quiz.Percentage(r.Score, r.TotalQuestions),
			WhenAgo: humanize.Time(r.CreatedAt),
		})
	}
	return activities
}
