package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
)

const assistantSystemPrompt = `Você é um assistente financeiro especializado em gestão de pequenas empresas.
Responda sempre em português, de forma clara e objetiva.
Use os dados financeiros fornecidos como contexto para fundamentar suas respostas.
Quando apropriado, ofereça sugestões práticas e insights sobre a saúde financeira do negócio.`

const insightsUserPrompt = `Analise os dados financeiros acima e gere insights sobre a saúde financeira do negócio: tendências de receita e despesa, principais categorias de gasto e recomendações práticas.`

// assistantService implements the AssistantSvc interface. It grounds every
// gateway conversation on the organization's financial summary and classifies
// the relayed answer for the frontend.
type assistantService struct {
	BaseService
	gateway   portssvc.AIGatewayClient
	reporting portssvc.ReportingService
}

// AssistantServiceOption is a functional option for configuring the assistant service
type AssistantServiceOption func(*assistantService)

// WithAssistantOrganizationAuthorizer adds the organization authorizer dependency
func WithAssistantOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) AssistantServiceOption {
	return func(s *assistantService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewAssistantService creates a new assistant service with the provided options
func NewAssistantService(gateway portssvc.AIGatewayClient, reporting portssvc.ReportingService, options ...AssistantServiceOption) portssvc.AssistantSvc {
	svc := &assistantService{
		gateway:   gateway,
		reporting: reporting,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure assistantService implements the AssistantSvc interface
var _ portssvc.AssistantSvc = (*assistantService)(nil)

// Chat answers a free-form user question grounded on the organization's finances.
func (s *assistantService) Chat(ctx context.Context, organizationID string, message string, systemData *domain.FinancialSummary, history []domain.ChatTurn, userID string) (*domain.AssistantReply, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to use assistant",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	systemPrompt := assistantSystemPrompt
	if finCtx := s.buildFinancialContext(ctx, organizationID, userID, systemData); finCtx != "" {
		systemPrompt = systemPrompt + "\n\nDados financeiros atuais:\n" + finCtx
	}

	turns := make([]domain.ChatTurn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, domain.ChatTurn{Role: "user", Content: message})

	answer, err := s.gateway.ChatCompletion(ctx, systemPrompt, turns)
	if err != nil {
		s.LogError(ctx, err, "AI gateway chat completion failed",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	reply := &domain.AssistantReply{
		Response: answer,
		Type:     classifyAssistantResponse(answer),
	}

	s.LogInfo(ctx, "Assistant chat completed",
		slog.String("organization_id", organizationID),
		slog.String("response_type", string(reply.Type)))
	return reply, nil
}

// GenerateInsights produces a proactive analysis of the organization's finances.
func (s *assistantService) GenerateInsights(ctx context.Context, organizationID string, summary *domain.FinancialSummary, userID string) (*domain.AssistantReply, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to generate insights",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if summary == nil {
		computed, err := s.computeSummary(ctx, organizationID, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute summary for insights",
				slog.String("organization_id", organizationID))
			return nil, err
		}
		summary = computed
	}

	systemPrompt := assistantSystemPrompt + "\n\nDados financeiros atuais:\n" + formatFinancialSummary(summary)
	turns := []domain.ChatTurn{{Role: "user", Content: insightsUserPrompt}}

	answer, err := s.gateway.ChatCompletion(ctx, systemPrompt, turns)
	if err != nil {
		s.LogError(ctx, err, "AI gateway insights request failed",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	reply := &domain.AssistantReply{
		Response: answer,
		Type:     domain.AssistantInsight,
	}

	s.LogInfo(ctx, "Assistant insights generated",
		slog.String("organization_id", organizationID))
	return reply, nil
}

// buildFinancialContext assembles the system-prompt context block: the
// caller-provided snapshot when present, otherwise a freshly computed
// summary. Summary failures degrade to an uncontextualized chat rather than
// failing the request.
func (s *assistantService) buildFinancialContext(ctx context.Context, organizationID, userID string, systemData *domain.FinancialSummary) string {
	if systemData != nil {
		return formatFinancialSummary(systemData)
	}

	summary, err := s.computeSummary(ctx, organizationID, userID)
	if err != nil {
		s.LogDebug(ctx, "Proceeding without financial context",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
		return ""
	}
	return formatFinancialSummary(summary)
}

// computeSummary fetches the trailing-six-month summary used as chat context.
func (s *assistantService) computeSummary(ctx context.Context, organizationID, userID string) (*domain.FinancialSummary, error) {
	if s.reporting == nil {
		return nil, fmt.Errorf("reporting service not configured")
	}
	to := time.Now()
	from := to.AddDate(0, -6, 0)
	return s.reporting.FinancialSummary(ctx, organizationID, from, to, userID)
}

// formatFinancialSummary renders the summary as the plain-text block embedded
// in the system prompt.
func formatFinancialSummary(summary *domain.FinancialSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Receita total: %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "Despesa total: %s\n", summary.TotalExpense.StringFixed(2))
	fmt.Fprintf(&b, "Saldo: %s\n", summary.Balance.StringFixed(2))
	if len(summary.TopExpenses) > 0 {
		b.WriteString("Maiores despesas:\n")
		for _, e := range summary.TopExpenses {
			fmt.Fprintf(&b, "- %s: %s\n", e.Description, e.Amount.StringFixed(2))
		}
	}
	if len(summary.TopIncomes) > 0 {
		b.WriteString("Maiores receitas:\n")
		for _, i := range summary.TopIncomes {
			fmt.Fprintf(&b, "- %s: %s\n", i.Description, i.Amount.StringFixed(2))
		}
	}
	if len(summary.MonthlyTrend) > 0 {
		b.WriteString("Evolução mensal (receita/despesa):\n")
		for _, p := range summary.MonthlyTrend {
			fmt.Fprintf(&b, "- %s: %s / %s\n", p.Month, p.Income.StringFixed(2), p.Expense.StringFixed(2))
		}
	}
	return b.String()
}

// classifyAssistantResponse buckets the gateway answer so the frontend can
// style it. Matching is case-insensitive on Portuguese keywords.
func classifyAssistantResponse(answer string) domain.AssistantResponseType {
	lower := strings.ToLower(answer)
	switch {
	case strings.Contains(lower, "sugestão") || strings.Contains(lower, "recomendo"):
		return domain.AssistantSuggestion
	case strings.Contains(lower, "insight") || strings.Contains(lower, "análise"):
		return domain.AssistantInsight
	default:
		return domain.AssistantText
	}
}
