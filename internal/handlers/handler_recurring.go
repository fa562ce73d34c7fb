package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/aidaadigitall/escfinan-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringBillHandler handles HTTP requests related to recurring bills.
type recurringBillHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// newRecurringBillHandler creates a new recurringBillHandler.
func newRecurringBillHandler(rs portssvc.RecurringSvcFacade) *recurringBillHandler {
	return &recurringBillHandler{recurringService: rs}
}

// registerRecurringBillRoutes registers organization-scoped recurring bill routes.
func registerRecurringBillRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringBillHandler(recurringService)

	bills := rg.Group("/recurring-bills")
	{
		bills.POST("", h.createRecurringBill)
		bills.GET("", h.listRecurringBills)
		bills.GET("/:id", h.getRecurringBill)
		bills.PUT("/:id", h.updateRecurringBill)
		bills.DELETE("/:id", h.deleteRecurringBill)
	}
}

// createRecurringBill godoc
// @Summary Create a recurring bill
// @Description Creates a recurring bill definition that the scheduler materializes into transactions
// @Tags recurring-bills
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param bill body dto.CreateRecurringBillRequest true "Recurring bill definition"
// @Success 201 {object} dto.RecurringBillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/recurring-bills [post]
func (h *recurringBillHandler) createRecurringBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.recurringService.CreateRecurringBill(c.Request.Context(), orgID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to create recurring bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create recurring bill"})
		}
		return
	}

	logger.Info("Recurring bill created", slog.String("recurring_bill_id", bill.RecurringBillID))
	c.JSON(http.StatusCreated, dto.ToRecurringBillResponse(bill))
}

// listRecurringBills godoc
// @Summary List recurring bills
// @Description Retrieves the organization's recurring bill definitions
// @Tags recurring-bills
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} dto.ListRecurringBillsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/recurring-bills [get]
func (h *recurringBillHandler) listRecurringBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bills, err := h.recurringService.ListRecurringBills(c.Request.Context(), orgID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a member of this organization"})
			return
		}
		logger.Error("Failed to list recurring bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list recurring bills"})
		return
	}

	resp := dto.ListRecurringBillsResponse{RecurringBills: make([]dto.RecurringBillResponse, len(bills))}
	for i := range bills {
		resp.RecurringBills[i] = dto.ToRecurringBillResponse(&bills[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getRecurringBill godoc
// @Summary Get a recurring bill
// @Description Retrieves a single recurring bill definition by ID
// @Tags recurring-bills
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Recurring bill ID"
// @Success 200 {object} dto.RecurringBillResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/recurring-bills/{id} [get]
func (h *recurringBillHandler) getRecurringBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	billID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.recurringService.GetRecurringBillByID(c.Request.Context(), orgID, billID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recurring bill not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a member of this organization"})
		default:
			logger.Error("Failed to get recurring bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve recurring bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringBillResponse(bill))
}

// updateRecurringBill godoc
// @Summary Update a recurring bill
// @Description Updates a recurring bill definition
// @Tags recurring-bills
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Recurring bill ID"
// @Param bill body dto.UpdateRecurringBillRequest true "Fields to update"
// @Success 200 {object} dto.RecurringBillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/recurring-bills/{id} [put]
func (h *recurringBillHandler) updateRecurringBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	billID := c.Param("id")

	var req dto.UpdateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.recurringService.UpdateRecurringBill(c.Request.Context(), orgID, billID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recurring bill not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to update recurring bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update recurring bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringBillResponse(bill))
}

// deleteRecurringBill godoc
// @Summary Deactivate a recurring bill
// @Description Stops future materialization of a recurring bill
// @Tags recurring-bills
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param id path string true "Recurring bill ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/recurring-bills/{id} [delete]
func (h *recurringBillHandler) deleteRecurringBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	billID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.recurringService.DeactivateRecurringBill(c.Request.Context(), orgID, billID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recurring bill not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Member role required"})
		default:
			logger.Error("Failed to deactivate recurring bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate recurring bill"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
