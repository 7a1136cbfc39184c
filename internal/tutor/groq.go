package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Fallback texts, one per failure mode. The chat view renders whatever
// comes back, so these read like assistant replies.
const (
	fallbackNoKey = "I'm currently in demonstration mode. Please add a GROQ_API_KEY to enable full AI functionality."
	fallbackError = "Sorry, there was an error connecting to the AI service. Please try again later."
	fallbackEmpty = "Sorry, I couldn't generate a response. Please try again."
)

// systemPrompt frames the model as a tutor.
const systemPrompt = `You are an AI tutor named EduAssist. Your goal is to help students learn effectively.

You should:
- Explain concepts clearly and concisely
- Use examples to illustrate points
- Break down complex topics into easy-to-understand pieces
- Be encouraging and positive
- Provide step-by-step explanations when needed
- Tailor explanations to the student's level of understanding

When appropriate, use markdown formatting to structure your responses with headings, bullet points, code blocks, etc.

Avoid:
- Being verbose or overly technical unless asked for advanced explanations
- Giving answers to homework problems directly; instead, guide students through the process
- Using jargon without explanation
`

// GroqTutor calls a Groq (OpenAI-compatible) chat-completions endpoint.
type GroqTutor struct {
	url    string // e.g. "https://api.groq.com/openai"
	apiKey string // empty = demonstration mode
	model  string // e.g. "llama3-70b-8192"
	client *http.Client
	logger *slog.Logger
}

var _ Tutor = (*GroqTutor)(nil)

func NewGroqTutor(url, apiKey, model string, logger *slog.Logger) *GroqTutor {
	return &GroqTutor{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Reply sends the conversation to the model and returns the assistant text.
// Every failure path degrades to a canned response; the caller never sees
// an error.
func (g *GroqTutor) Reply(ctx context.Context, userMessage string, history []Message) string {
	if g.apiKey == "" {
		g.logger.Warn("tutor api key not configured, using fallback response")
		return fallbackNoKey
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	content, err := g.call(ctx, messages)
	if err != nil {
		g.logger.Error("tutor request failed", "error", err)
		return fallbackError
	}
	if content == "" {
		return fallbackEmpty
	}
	return content
}

func (g *GroqTutor) call(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", nil
	}
	return chatResp.Choices[0].Message.Content, nil
}
