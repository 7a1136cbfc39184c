package api

import "net/http"

// RegisterRoutes wires every handler onto the mux using Go 1.22 method
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Quizzes
	mux.HandleFunc("POST /quizzes", h.startQuiz)
	mux.HandleFunc("GET /quizzes/{sessionID}", h.getQuizSession)
	mux.HandleFunc("DELETE /quizzes/{sessionID}", h.discardQuiz)
	mux.HandleFunc("POST /quizzes/{sessionID}/answers", h.selectAnswer)
	mux.HandleFunc("POST /quizzes/{sessionID}/advance", h.advanceQuiz)
	mux.HandleFunc("POST /quizzes/{sessionID}/retreat", h.retreatQuiz)

	// Results & dashboard
	mux.HandleFunc("GET /users/{userID}/results", h.listResults)
	mux.HandleFunc("GET /users/{userID}/stats", h.getStats)
	mux.HandleFunc("GET /users/{userID}/activity", h.getActivity)
	mux.HandleFunc("GET /users/{userID}/recommendations", h.getRecommendations)
	mux.HandleFunc("GET /notifications", h.getNotifications)

	// Courses & roadmaps
	mux.HandleFunc("GET /users/{userID}/courses", h.listCourses)
	mux.HandleFunc("GET /users/{userID}/courses/{courseID}", h.getCourse)
	mux.HandleFunc("POST /users/{userID}/courses/{courseID}/modules/{moduleID}/units/{unitID}/complete", h.completeUnit)
	mux.HandleFunc("GET /users/{userID}/roadmaps", h.listRoadmaps)
	mux.HandleFunc("POST /users/{userID}/roadmaps/{roadmapID}/steps/{stepID}/resources/complete", h.completeResource)

	// Tutor chat
	mux.HandleFunc("POST /chat", h.chat)
}
