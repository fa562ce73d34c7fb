// Package ai implements the outbound client for the OpenAI-compatible chat
// completion gateway the assistant endpoints relay to.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/platform/config"
)

const defaultRequestTimeout = 60 * time.Second

// GatewayClient talks to the configured chat-completion endpoint.
type GatewayClient struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGatewayClient builds a client from the application config.
func NewGatewayClient(cfg *config.Config) *GatewayClient {
	return &GatewayClient{
		url:        cfg.AIGatewayURL,
		apiKey:     cfg.AIGatewayKey,
		model:      cfg.AIGatewayModel,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Ensure GatewayClient implements the AIGatewayClient port
var _ portssvc.AIGatewayClient = (*GatewayClient)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatCompletion sends the system prompt plus conversation turns and returns
// the assistant's answer text. Upstream auth, rate-limit and credit failures
// map to the matching apperrors sentinels.
func (c *GatewayClient) ChatCompletion(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("AI gateway key is not set: %w", apperrors.ErrConfiguration)
	}

	messages := make([]chatMessage, 0, len(turns)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, turn := range turns {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	// Cap the body read; gateway answers are small
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read gateway response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", fmt.Errorf("gateway rejected credentials: %w", apperrors.ErrConfiguration)
	case http.StatusPaymentRequired:
		return "", apperrors.ErrInsufficientCredits
	case http.StatusTooManyRequests:
		return "", apperrors.ErrRateLimited
	default:
		return "", fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("gateway error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("gateway returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
