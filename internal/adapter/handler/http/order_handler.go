package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/domain/entity"
	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/middleware/auth"
	"github.com/helioworks/payment-service/internal/usecase"
)

type OrderHandler struct {
	orderService *usecase.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *usecase.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	PlanCode            string `json:"plan_code" validate:"required"`
	PaymentProviderCode string `json:"payment_provider_code" validate:"required"`
}

// CreateOrder creates an order for the authenticated user and returns the
// checkout URL of its initiated payment
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "plan_code and payment_provider_code are required",
		})
	}

	result, err := h.orderService.CreateOrder(c.Request().Context(), user.UserID, req.PlanCode, req.PaymentProviderCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
			})
		case errors.Is(err, domainErrors.ErrInvalidPaymentProvider):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Unsupported payment provider",
			})
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Plan is not payable",
			})
		default:
			h.logger.Error("Failed to create order",
				zap.String("user_id", user.UserID.String()),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to create order",
			})
		}
	}

	return c.JSON(http.StatusCreated, result)
}

// GetOrder returns one order of the authenticated user
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid order id",
		})
	}

	detail, err := h.orderService.GetOrderDetail(c.Request().Context(), user.UserID, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNotFound) || errors.Is(err, domainErrors.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Order not found",
			})
		}
		h.logger.Error("Failed to get order",
			zap.String("user_id", user.UserID.String()),
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get order",
		})
	}

	return c.JSON(http.StatusOK, detail)
}

// ListOrders returns one page of the authenticated user's orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params entity.PaginationParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid pagination parameters",
		})
	}

	result, err := h.orderService.ListUserOrders(c.Request().Context(), user.UserID, params)
	if err != nil {
		h.logger.Error("Failed to list orders",
			zap.String("user_id", user.UserID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list orders",
		})
	}

	return c.JSON(http.StatusOK, result)
}
