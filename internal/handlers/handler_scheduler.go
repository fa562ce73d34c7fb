package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/aidaadigitall/escfinan-sub003/internal/middleware"
	"github.com/aidaadigitall/escfinan-sub003/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// schedulerHandler handles scheduled-job trigger requests.
type schedulerHandler struct {
	recurringService portssvc.RecurringMaterializerSvc
}

// newSchedulerHandler creates a new schedulerHandler.
func newSchedulerHandler(rs portssvc.RecurringMaterializerSvc) *schedulerHandler {
	return &schedulerHandler{recurringService: rs}
}

// registerSchedulerRoutes registers the cron-facing trigger routes. These
// authenticate with the scheduler token or a service token, not a user JWT.
func registerSchedulerRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newSchedulerHandler(services.Recurring)

	scheduler := rg.Group("/api/v1/scheduler", middleware.SchedulerAuth(cfg.SchedulerToken, services.ServiceToken))
	{
		scheduler.POST("/recurring-bills/run", h.runRecurringBills)
	}
}

// runRecurringBills godoc
// @Summary Materialize due recurring bills
// @Description Processes every active recurring bill across all organizations, creating pending transactions for definitions due today. Intended to be called once a day by a cron job. Idempotent within a month window.
// @Tags scheduler
// @Produce json
// @Success 200 {object} dto.MaterializationRunResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /scheduler/recurring-bills/run [post]
func (h *schedulerHandler) runRecurringBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.recurringService.RunMaterialization(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Recurring bill run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to run recurring bill materialization"})
		return
	}

	logger.Info("Recurring bill run finished",
		slog.Int("total", stats.Total),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("errors", len(stats.Errors)))
	c.JSON(http.StatusOK, dto.ToMaterializationRunResponse(stats))
}
