package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/eduassist/backend/internal/domain/quiz"
	"github.com/eduassist/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartQuizRequest struct {
	UserID        string `json:"user_id" example:"u1"`
	Topic         string `json:"topic" example:"JavaScript"`
	Difficulty    string `json:"difficulty" example:"medium"`
	QuestionCount int    `json:"question_count" example:"5"`
}

func (r *StartQuizRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	// Topic and count validation belongs to the domain config so the
	// boundary rule lives in one place.
	return nil
}

type QuestionView struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type SessionResponse struct {
	ID               string       `json:"id"`
	State            string       `json:"state"`
	Topic            string       `json:"topic"`
	TotalQuestions   int          `json:"total_questions"`
	CurrentIndex     int          `json:"current_index"`
	Question         QuestionView `json:"question"`
	SelectedAnswers  []string     `json:"selected_answers"` // "" = unanswered
	RemainingSeconds int          `json:"remaining_seconds"`
}

type SelectAnswerRequest struct {
	QuestionIndex int    `json:"question_index" example:"0"`
	Option        string `json:"option" example:"Variables store data values"`
}

func (r *SelectAnswerRequest) Validate() error {
	if r.QuestionIndex < 0 {
		return errors.New("question_index must not be negative")
	}
	if r.Option == "" {
		return errors.New("option is required")
	}
	return nil
}

type ReviewItem struct {
	Prompt        string `json:"prompt"`
	YourAnswer    string `json:"your_answer"` // "" = not answered
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

type QuizResultResponse struct {
	SessionID      string       `json:"session_id"`
	Topic          string       `json:"topic"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Percentage     int          `json:"percentage"`
	Review         []ReviewItem `json:"review"`
}

type AdvanceResponse struct {
	Session SessionResponse     `json:"session"`
	Result  *QuizResultResponse `json:"result,omitempty"`
}

type HistoryEntry struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	CreatedAt      time.Time `json:"created_at"`
}

func sessionResponse(s quiz.Session, now time.Time) SessionResponse {
	answers := make([]string, len(s.Questions))
	for i := range s.Questions {
		answers[i] = s.Answers[i]
	}
	resp := SessionResponse{
		ID:               s.ID,
		State:            string(s.State),
		Topic:            s.Config.Topic,
		TotalQuestions:   len(s.Questions),
		CurrentIndex:     s.CurrentIndex,
		SelectedAnswers:  answers,
		RemainingSeconds: s.RemainingSeconds(now),
	}
	if s.State == quiz.StateTaking {
		q := s.Current()
		resp.Question = QuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options}
	}
	return resp
}

func resultResponse(s quiz.Session, result quiz.Result) *QuizResultResponse {
	review := make([]ReviewItem, len(s.Questions))
	for i, q := range s.Questions {
		answer := s.Answers[i]
		review[i] = ReviewItem{
			Prompt:        q.Prompt,
			YourAnswer:    answer,
			CorrectAnswer: q.CorrectOption(),
			Correct:       answer == q.CorrectOption(),
			Explanation:   q.Explanation,
		}
	}
	return &QuizResultResponse{
		SessionID:      s.ID,
		Topic:          s.Config.Topic,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		Review:         review,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startQuiz opens a new quiz session.
// @Summary      Start a quiz
// @Description  Validate the configuration, generate a question pool and open a session. A ?topic= query parameter pre-fills the topic (deep link).
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        topic  query     string            false  "Pre-filled topic"
// @Param        body   body      StartQuizRequest  true   "Quiz configuration"
// @Success      201    {object}  SessionResponse
// @Failure      400    {object}  map[string]string
// @Router       /quizzes [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Deep-link contract: a topic in the query bypasses manual entry.
	if topic := r.URL.Query().Get("topic"); topic != "" {
		req.Topic = topic
	}

	session, err := h.quizzes.Start(req.UserID, quiz.Config{
		Topic:         req.Topic,
		Difficulty:    quiz.Difficulty(req.Difficulty),
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse(session, time.Now()))
}

// getQuizSession returns the current state of a session.
// @Summary      Get a quiz session
// @Tags         Quizzes
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /quizzes/{sessionID} [get]
func (h *Handler) getQuizSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.quizzes.Get(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session, time.Now()))
}

// selectAnswer records the chosen option for one question.
// @Summary      Select an answer
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session id"
// @Param        body       body      SelectAnswerRequest  true  "Chosen option"
// @Success      200        {object}  SessionResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /quizzes/{sessionID}/answers [post]
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	var req SelectAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.quizzes.SelectAnswer(r.PathValue("sessionID"), req.QuestionIndex, req.Option)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session, time.Now()))
}

// advanceQuiz moves to the next question or completes the session.
// @Summary      Advance the session
// @Description  Moves the cursor forward. Advancing past the final question completes the session, computes the score and queues the result for persistence. Advancing with the current question unanswered is a no-op.
// @Tags         Quizzes
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  AdvanceResponse
// @Failure      404        {object}  map[string]string
// @Router       /quizzes/{sessionID}/advance [post]
func (h *Handler) advanceQuiz(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	session, result, err := h.quizzes.Advance(sessionID)
	if h.handleSessionError(w, err) {
		return
	}

	resp := AdvanceResponse{Session: sessionResponse(session, time.Now())}
	if result != nil {
		resp.Result = resultResponse(session, *result)
	}
	respondJSON(w, http.StatusOK, resp)
}

// retreatQuiz moves back to the previous question.
// @Summary      Go back one question
// @Tags         Quizzes
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /quizzes/{sessionID}/retreat [post]
func (h *Handler) retreatQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.quizzes.Retreat(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(session, time.Now()))
}

// discardQuiz drops a session so a fresh attempt can start.
// @Summary      Discard a session
// @Tags         Quizzes
// @Param        sessionID  path  string  true  "Session id"
// @Success      204
// @Router       /quizzes/{sessionID} [delete]
func (h *Handler) discardQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizzes.Discard(r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

// listResults returns the learner's quiz history, newest first.
// @Summary      List quiz results
// @Tags         Results
// @Produce      json
// @Param        userID  path      string  true  "User id"
// @Success      200     {array}   HistoryEntry
// @Router       /users/{userID}/results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	history, err := h.quizzes.History(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "results") {
		return
	}

	entries := make([]HistoryEntry, len(history))
	for i, res := range history {
		entries[i] = HistoryEntry{
			ID:             res.ID,
			Topic:          res.Topic,
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			Percentage:     quiz.Percentage(res.Score, res.TotalQuestions),
			CreatedAt:      res.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "session not found")
		return true
	}
	respondError(w, http.StatusBadRequest, err.Error())
	return true
}
