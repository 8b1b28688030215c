package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/middleware/auth"
	"github.com/helioworks/payment-service/internal/usecase"
)

type SubscriptionHandler struct {
	subscriptionService *usecase.SubscriptionService
	logger              *zap.Logger
}

func NewSubscriptionHandler(subscriptionService *usecase.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// GetCurrentSubscription returns the authenticated user's subscription state
func (h *SubscriptionHandler) GetCurrentSubscription(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	result, err := h.subscriptionService.GetCurrentSubscription(c.Request().Context(), user.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrSubscriptionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "No subscription found",
			})
		}
		h.logger.Error("Failed to get subscription",
			zap.String("user_id", user.UserID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get subscription",
		})
	}

	return c.JSON(http.StatusOK, result)
}
