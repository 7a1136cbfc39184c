package api

import (
	"errors"
	"net/http"

	"github.com/eduassist/backend/internal/tutor"
)

// ── Request / Response types ────────────────────────────────────────────────

type ChatRequest struct {
	Message string          `json:"message" example:"Explain closures in JavaScript"`
	History []tutor.Message `json:"history,omitempty"`
}

func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	for _, m := range r.History {
		if m.Role != "user" && m.Role != "assistant" {
			return errors.New("history roles must be user or assistant")
		}
	}
	return nil
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ── Handler ─────────────────────────────────────────────────────────────────

// chat answers a learner's message through the AI tutor.
// @Summary      Chat with the tutor
// @Description  Sends the message and conversation history to the tutor model. Always returns usable text: remote failures degrade to a fallback reply, never an error status.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        body  body      ChatRequest  true  "Message and history"
// @Success      200   {object}  ChatResponse
// @Failure      400   {object}  map[string]string
// @Router       /chat [post]
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply := h.tutor.Reply(r.Context(), req.Message, req.History)
	respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
