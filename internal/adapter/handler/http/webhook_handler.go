package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/usecase"
)

// signatureHeaders maps a provider code to the header carrying its webhook
// signature.
var signatureHeaders = map[string]string{
	"stripe": "Stripe-Signature",
	"toss":   "Toss-Signature",
}

type WebhookHandler struct {
	settlementService *usecase.SettlementService
	logger            *zap.Logger
}

func NewWebhookHandler(settlementService *usecase.SettlementService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

// HandleWebhook receives a provider notification and settles the payment it
// references. A non-2xx response makes well-behaved providers redeliver, so
// only verification and reference failures answer 400; everything the engine
// can safely ignore answers 200.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	providerCode := c.Param("provider")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Error reading request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error reading request body"})
	}

	signature := c.Request().Header.Get(signatureHeaders[providerCode])

	err = h.settlementService.HandleWebhook(c.Request().Context(), providerCode, body, signature)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPaymentProvider):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Unknown provider",
			})
		case errors.Is(err, domainErrors.ErrInvalidSignature):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Webhook signature verification failed",
			})
		case errors.Is(err, domainErrors.ErrInvalidReference):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Webhook references no known payment",
			})
		case errors.Is(err, domainErrors.ErrPaymentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Payment not found",
			})
		default:
			h.logger.Error("Failed to process webhook",
				zap.String("provider", providerCode),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to process webhook",
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
