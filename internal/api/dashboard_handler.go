package api

import (
	"net/http"

	"github.com/eduassist/backend/internal/domain/progress"
)

// ── Response types ──────────────────────────────────────────────────────────

type GrowthResponse struct {
	Quizzes int `json:"quizzes"`
	Score   int `json:"score"`
}

type StatsResponse struct {
	TotalQuizzes   int            `json:"total_quizzes"`
	AverageScore   int            `json:"average_score"`
	CurrentStreak  int            `json:"current_streak"`
	WeeklyProgress int            `json:"weekly_progress"`
	WeeklyGrowth   GrowthResponse `json:"weekly_growth"`
}

func statsResponse(s progress.Stats) StatsResponse {
	return StatsResponse{
		TotalQuizzes:   s.TotalQuizzes,
		AverageScore:   s.AverageScore,
		CurrentStreak:  s.CurrentStreak,
		WeeklyProgress: s.WeeklyProgress,
		WeeklyGrowth:   GrowthResponse{Quizzes: s.WeeklyGrowth.Quizzes, Score: s.WeeklyGrowth.Score},
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats recomputes the learner's dashboard stats from history.
// @Summary      Dashboard stats
// @Description  Totals, average score, day streak, weekly progress and week-over-week growth, recomputed from the full quiz history on every call.
// @Tags         Dashboard
// @Produce      json
// @Param        userID  path      string  true  "User id"
// @Success      200     {object}  StatsResponse
// @Router       /users/{userID}/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.progress.Stats(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, statsResponse(stats))
}

// getActivity returns the recent-activity feed.
// @Summary      Recent activity
// @Tags         Dashboard
// @Produce      json
// @Param        userID  path     string  true  "User id"
// @Success      200     {array}  progress.Activity
// @Router       /users/{userID}/activity [get]
func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.progress.Activity(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "activity") {
		return
	}
	respondJSON(w, http.StatusOK, activity)
}

// getRecommendations proposes follow-on topics.
// @Summary      Recommended topics
// @Tags         Dashboard
// @Produce      json
// @Param        userID  path     string  true  "User id"
// @Success      200     {array}  recommend.Item
// @Router       /users/{userID}/recommendations [get]
func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	items, err := h.progress.Recommendations(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "recommendations") {
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// getNotifications returns recent persistence-failure notifications.
// @Summary      Notifications
// @Tags         Dashboard
// @Produce      json
// @Success      200  {array}  notify.Notification
// @Router       /notifications [get]
func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.feed.Recent())
}
