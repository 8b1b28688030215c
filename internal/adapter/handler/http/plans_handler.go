package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/usecase"
)

type PlansHandler struct {
	planService *usecase.PlanService
	logger      *zap.Logger
}

func NewPlansHandler(planService *usecase.PlanService, logger *zap.Logger) *PlansHandler {
	return &PlansHandler{
		planService: planService,
		logger:      logger,
	}
}

// GetPlans returns the active plan catalog
func (h *PlansHandler) GetPlans(c echo.Context) error {
	plans, err := h.planService.ListActivePlans(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get plans", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get plans",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"plans": plans,
		"count": len(plans),
	})
}
