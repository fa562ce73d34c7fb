package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aidaadigitall/escfinan-sub003/internal/adapters/ai"
	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *ai.GatewayClient {
	return ai.NewGatewayClient(&config.Config{
		AIGatewayURL:   serverURL,
		AIGatewayKey:   "test-key",
		AIGatewayModel: "google/gemini-2.5-flash",
	})
}

func TestChatCompletion_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google/gemini-2.5-flash", req["model"])
		messages := req["messages"].([]any)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Resposta do assistente"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	answer, err := client.ChatCompletion(context.Background(), "prompt de sistema",
		[]domain.ChatTurn{{Role: "user", Content: "Olá"}})

	require.NoError(t, err)
	assert.Equal(t, "Resposta do assistente", answer)
}

func TestChatCompletion_MapsRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestChatCompletion_MapsInsufficientCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
}

func TestChatCompletion_MapsRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestChatCompletion_MissingKey(t *testing.T) {
	client := ai.NewGatewayClient(&config.Config{AIGatewayURL: "http://unused"})
	_, err := client.ChatCompletion(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
