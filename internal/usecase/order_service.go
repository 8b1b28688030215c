package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/domain/entity"
	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/provider"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

// ProviderRegistry resolves provider codes to payment providers
type ProviderRegistry interface {
	GetProvider(code string) (provider.PaymentProvider, error)
}

const defaultProviderTimeout = 15 * time.Second

// OrderService creates orders with a price snapshot and initiates their
// payment in one unit of work: no order row survives a failed initiation.
type OrderService struct {
	txManager       repository.TxManager
	planRepo        repository.PlanRepository
	orderRepo       repository.OrderRepository
	paymentRepo     repository.PaymentRepository
	providers       ProviderRegistry
	providerTimeout time.Duration
	logger          *zap.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TxManager,
	planRepo repository.PlanRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	providers ProviderRegistry,
	providerTimeout time.Duration,
	logger *zap.Logger,
) *OrderService {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	return &OrderService{
		txManager:       txManager,
		planRepo:        planRepo,
		orderRepo:       orderRepo,
		paymentRepo:     paymentRepo,
		providers:       providers,
		providerTimeout: providerTimeout,
		logger:          logger,
	}
}

// CreateOrder creates an order for the plan at its current catalog price,
// creates the payment attempt and initiates it with the provider. Order,
// payment and the provider handle commit together or not at all.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, planCode, providerCode string) (*entity.CreateOrderResult, error) {
	plan, err := s.planRepo.GetByCode(ctx, planCode)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, domainErrors.ErrPlanNotFound
	}

	prov, err := s.providers.GetProvider(providerCode)
	if err != nil {
		return nil, err
	}

	if !plan.Price.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}

	var result *entity.CreateOrderResult
	err = s.txManager.Transact(ctx, func(tx repository.Tx) error {
		order := &model.Order{
			UserID: userID,
			PlanID: plan.ID,
			Total:  plan.Price,
			Status: model.OrderStatusCreated,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}

		payment := &model.Payment{
			UserID:              userID,
			OrderID:             order.ID,
			Amount:              order.Total,
			Status:              model.PaymentStatusCreated,
			PaymentProviderCode: prov.Code(),
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}

		initCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()

		initResp, err := prov.Initiate(initCtx, &provider.InitiateRequest{
			OrderID:   order.ID,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			PlanName:  plan.Name,
		})
		if err != nil {
			// Rolls back both inserts: an order must never exist without a
			// successfully initiated payment.
			return err
		}

		if err := s.paymentRepo.AttachProviderData(ctx, tx, payment.ID,
			initResp.ExternalID, initResp.CheckoutURL, initResp.ExpiresAt); err != nil {
			return err
		}

		result = &entity.CreateOrderResult{
			ID:         order.ID,
			Status:     order.Status,
			PaymentURL: initResp.CheckoutURL,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to create order",
			zap.String("user_id", userID.String()),
			zap.String("plan_code", planCode),
			zap.String("provider", providerCode),
			zap.Error(err))
		return nil, classify(err, "order creation failed")
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", result.ID),
		zap.String("user_id", userID.String()),
		zap.String("plan_code", planCode),
		zap.String("provider", prov.Code()))

	return result, nil
}

// GetOrderDetail returns one order of the user together with its
// authoritative payment. The checkout URL is only exposed while the order is
// still payable.
func (s *OrderService) GetOrderDetail(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.OrderDetailResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrOrderNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, order.PlanID)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetLastByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	detail := &entity.OrderDetailResult{
		ID:                order.ID,
		PlanCode:          plan.Code,
		Total:             order.Total,
		Status:            order.Status,
		PaymentExpireDate: payment.ExpiresAt,
		CreatedAt:         order.CreatedAt,
	}
	if order.Status == model.OrderStatusCreated {
		detail.PaymentURL = payment.PaymentURL
	}
	return detail, nil
}

// ListUserOrders returns one page of the user's orders, newest first.
// Pagination inputs are clamped before they reach the store.
func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID, params entity.PaginationParams) (*entity.PaginatedOrdersResult, error) {
	params.Clamp()

	total, err := s.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, classify(err, "failed to count orders")
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID, params.Offset(), params.PageSize)
	if err != nil {
		return nil, classify(err, "failed to list orders")
	}

	items := make([]entity.OrderListItem, len(orders))
	for i, order := range orders {
		items[i] = entity.OrderListItem{
			ID:        order.ID,
			PlanID:    order.PlanID,
			Total:     order.Total,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		}
	}

	return &entity.PaginatedOrdersResult{
		Data: items,
		Pagination: entity.PaginationMeta{
			Page:     params.Page,
			PageSize: params.PageSize,
			Total:    total,
		},
	}, nil
}
