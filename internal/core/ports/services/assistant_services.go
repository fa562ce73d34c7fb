package services

import (
	"context"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// AIGatewayClient relays chat-completion requests to the configured AI
// gateway. Implementations map upstream rate-limit and credit failures to
// apperrors.ErrRateLimited and apperrors.ErrInsufficientCredits.
type AIGatewayClient interface {
	// ChatCompletion sends the system prompt and conversation turns and
	// returns the assistant's answer text.
	ChatCompletion(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error)
}

// AssistantSvc defines the AI assistant operations. Both calls ground the
// gateway conversation on the organization's financial summary and classify
// the answer.
type AssistantSvc interface {
	// Chat answers a free-form user question. SystemData optionally carries
	// a caller-supplied financial snapshot; when nil the summary is computed
	// from the ledger.
	Chat(ctx context.Context, organizationID string, message string, systemData *domain.FinancialSummary, history []domain.ChatTurn, userID string) (*domain.AssistantReply, error)

	// GenerateInsights produces a proactive analysis of the given financial
	// summary; when summary is nil it is computed from the ledger.
	GenerateInsights(ctx context.Context, organizationID string, summary *domain.FinancialSummary, userID string) (*domain.AssistantReply, error)
}
