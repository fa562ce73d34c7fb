package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/aidaadigitall/escfinan-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// assistantHandler handles HTTP requests for the AI assistant.
type assistantHandler struct {
	assistantService portssvc.AssistantSvc
}

// newAssistantHandler creates a new assistantHandler.
func newAssistantHandler(as portssvc.AssistantSvc) *assistantHandler {
	return &assistantHandler{assistantService: as}
}

// registerAssistantRoutes registers organization-scoped assistant routes.
// Every call fans out to the paid AI gateway, so the whole group is rate
// limited per client IP.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvc) {
	h := newAssistantHandler(assistantService)

	rate, _ := limiter.NewRateFromFormatted("20-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	assistant := rg.Group("/assistant", middleware.RateLimit(ipLimiter))
	{
		assistant.POST("/chat", h.chat)
		assistant.POST("/insights", h.insights)
	}
}

// chat godoc
// @Summary Chat with the financial assistant
// @Description Relays a question to the AI gateway, grounded on the organization's financial summary
// @Tags assistant
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param chat body dto.ChatRequest true "Message and optional conversation history"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "AI gateway credits exhausted"
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "AI gateway rate limit reached"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/assistant/chat [post]
func (h *assistantHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	history := make([]domain.ChatTurn, len(req.ConversationHistory))
	for i, m := range req.ConversationHistory {
		history[i] = domain.ChatTurn{Role: m.Role, Content: m.Content}
	}

	var systemData *domain.FinancialSummary
	if req.SystemData != nil {
		systemData = req.SystemData.ToFinancialSummary()
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), orgID, req.Message, systemData, history, userID)
	if err != nil {
		h.writeAssistantError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatResponse(reply))
}

// insights godoc
// @Summary Generate financial insights
// @Description Produces a proactive analysis of the organization's finances. The analysis block is optional; when omitted it is computed from the ledger.
// @Tags assistant
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param insights body dto.InsightsRequest true "Optional analysis snapshot"
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "AI gateway credits exhausted"
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "AI gateway rate limit reached"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/assistant/insights [post]
func (h *assistantHandler) insights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var summary *domain.FinancialSummary
	if req.Analysis != nil {
		summary = req.Analysis.ToFinancialSummary()
	}

	reply, err := h.assistantService.GenerateInsights(c.Request.Context(), orgID, summary, userID)
	if err != nil {
		h.writeAssistantError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: reply.Response})
}

// writeAssistantError maps assistant/gateway failures to HTTP statuses.
func (h *assistantHandler) writeAssistantError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a member of this organization"})
	case errors.Is(err, apperrors.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "AI gateway rate limit reached, try again shortly"})
	case errors.Is(err, apperrors.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "AI gateway credits exhausted"})
	case errors.Is(err, apperrors.ErrConfiguration):
		logger.Error("Assistant gateway misconfigured", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Assistant is not configured"})
	default:
		logger.Error("Assistant request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Assistant request failed"})
	}
}
