package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

type orderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, tx repository.Tx, order *model.Order) error {
	err := conn(r.db, tx).WithContext(ctx).Create(order).Error
	if err != nil {
		r.logger.Error("Failed to create order",
			zap.String("user_id", order.UserID.String()),
			zap.Int64("plan_id", order.PlanID),
			zap.Error(err))
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrOrderNotFound
		}
		r.logger.Error("Failed to get order",
			zap.Int64("order_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, tx repository.Tx, id int64, status model.OrderStatus) error {
	err := conn(r.db, tx).WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		r.logger.Error("Failed to update order status",
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		r.logger.Error("Failed to list orders",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to count orders",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
