package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/aidaadigitall/escfinan-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// serviceTokenHandler handles HTTP requests for service token management.
type serviceTokenHandler struct {
	tokenService portssvc.ServiceTokenSvc
}

// newServiceTokenHandler creates a new serviceTokenHandler.
func newServiceTokenHandler(ts portssvc.ServiceTokenSvc) *serviceTokenHandler {
	return &serviceTokenHandler{tokenService: ts}
}

// registerServiceTokenRoutes registers service token management routes.
func registerServiceTokenRoutes(rg *gin.RouterGroup, tokenService portssvc.ServiceTokenSvc) {
	h := newServiceTokenHandler(tokenService)

	tokens := rg.Group("/service-tokens")
	{
		tokens.POST("", h.createToken)
		tokens.DELETE("/:id", h.revokeToken)
	}
}

// createToken godoc
// @Summary Issue a service token
// @Description Creates a token for non-interactive callers such as the scheduler. The plaintext token is shown only once.
// @Tags service-tokens
// @Accept json
// @Produce json
// @Param token body dto.CreateServiceTokenRequest true "Token name and optional expiry (seconds)"
// @Success 201 {object} dto.CreateServiceTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-tokens [post]
func (h *serviceTokenHandler) createToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateServiceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresIn != nil {
		d := time.Duration(*req.ExpiresIn) * time.Second
		expiresIn = &d
	}

	plaintext, token, err := h.tokenService.CreateToken(c.Request.Context(), req.Name, expiresIn)
	if err != nil {
		logger.Error("Failed to create service token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create token"})
		return
	}

	logger.Info("Service token created", slog.String("token_id", token.ID), slog.String("name", token.Name))
	c.JSON(http.StatusCreated, dto.CreateServiceTokenResponse{
		Token:   plaintext,
		Details: dto.ToServiceTokenResponse(token),
	})
}

// revokeToken godoc
// @Summary Revoke a service token
// @Description Immediately invalidates a service token by ID
// @Tags service-tokens
// @Produce json
// @Param id path string true "Token ID" format(uuid)
// @Success 204 "Token revoked"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-tokens/{id} [delete]
func (h *serviceTokenHandler) revokeToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid token ID"})
		return
	}

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.RevokeToken(c.Request.Context(), tokenID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Token not found"})
			return
		}
		logger.Error("Failed to revoke service token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to revoke token"})
		return
	}

	c.Status(http.StatusNoContent)
}
