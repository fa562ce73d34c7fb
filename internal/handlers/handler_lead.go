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
)

// leadHandler handles HTTP requests related to CRM leads.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

// newLeadHandler creates a new leadHandler.
func newLeadHandler(ls portssvc.LeadSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls}
}

// registerLeadRoutes registers organization-scoped lead routes.
func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade) {
	h := newLeadHandler(leadService)

	leads := rg.Group("/leads")
	{
		leads.POST("", h.createLead)
		leads.GET("", h.listLeads)
		leads.GET("/:id", h.getLead)
		leads.PUT("/:id", h.updateLead)
		leads.DELETE("/:id", h.deleteLead)
	}
}

// createLead godoc
// @Summary Create a lead
// @Description Creates a new CRM lead with status "new"
// @Tags leads
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), orgID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to create lead", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create lead"})
		}
		return
	}

	logger.Info("Lead created", slog.String("lead_id", lead.LeadID))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// listLeads godoc
// @Summary List leads
// @Description Retrieves the organization's leads, optionally filtered by funnel status
// @Tags leads
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param status query string false "Filter by status" Enums(new, contacted, qualified, won, lost)
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListLeadsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var status *domain.LeadStatus
	if params.Status != "" {
		s := domain.LeadStatus(params.Status)
		status = &s
	}

	leads, err := h.leadService.ListLeads(c.Request.Context(), orgID, status, params.Limit, params.Offset, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a member of this organization"})
			return
		}
		logger.Error("Failed to list leads", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leads"})
		return
	}

	resp := dto.ListLeadsResponse{Leads: make([]dto.LeadResponse, len(leads))}
	for i := range leads {
		resp.Leads[i] = dto.ToLeadResponse(&leads[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getLead godoc
// @Summary Get a lead
// @Description Retrieves a single lead by ID
// @Tags leads
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/leads/{id} [get]
func (h *leadHandler) getLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	leadID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), orgID, leadID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a member of this organization"})
		default:
			logger.Error("Failed to get lead", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve lead"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// updateLead godoc
// @Summary Update a lead
// @Description Updates a lead's details or funnel status
// @Tags leads
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/leads/{id} [put]
func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	leadID := c.Param("id")

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), orgID, leadID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to update lead", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update lead"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// deleteLead godoc
// @Summary Delete a lead
// @Description Soft deletes a lead
// @Tags leads
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Lead ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/leads/{id} [delete]
func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	leadID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), orgID, leadID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to delete lead", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete lead"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
