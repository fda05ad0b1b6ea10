package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/domain"
)

type OpenAIService struct {
	apiKey     string
	baseURL    string
	models     []string
	httpClient *http.Client
}

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		apiKey:     apiKey,
		baseURL:    "https://api.openai.com/v1",
		models:     config.ChatModels,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the system+user message pair to each configured model in
// order and returns the first non-empty completion. The loop is strictly
// sequential; a model is never retried once it failed.
func (s *OpenAIService) Complete(ctx context.Context, system, user string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrNoAPIKey
	}

	attemptErrs := make([]error, 0, len(s.models))
	for _, model := range s.models {
		content, err := s.complete(ctx, model, system, user)
		if err != nil {
			slog.Warn("chat completion attempt failed", "model", model, "error", err)
			attemptErrs = append(attemptErrs, fmt.Errorf("%s: %w", model, err))
			continue
		}
		return content, nil
	}

	return "", fmt.Errorf("all models failed: %w", errors.Join(attemptErrs...))
}

func (s *OpenAIService) complete(ctx context.Context, model, system, user string) (string, error) {
	chatReq := ChatRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: config.ChatTemperature,
		MaxTokens:   config.ChatMaxTokens,
	}

	payload, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode, body)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", domain.ErrNoContent
	}

	return chatResp.Choices[0].Message.Content, nil
}
