package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) repository.PaymentRepository {
	return &paymentRepository{db: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, tx repository.Tx, payment *model.Payment) error {
	err := conn(r.db, tx).WithContext(ctx).Create(payment).Error
	if err != nil {
		r.logger.Error("Failed to create payment",
			zap.Int64("order_id", payment.OrderID),
			zap.String("provider", payment.PaymentProviderCode),
			zap.Error(err))
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment",
			zap.Int64("payment_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetLastByOrderID returns the authoritative payment for an order, i.e. the
// one with the highest id.
func (r *paymentRepository) GetLastByOrderID(ctx context.Context, orderID int64) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get last payment for order",
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) AttachProviderData(ctx context.Context, tx repository.Tx, id int64, externalID, paymentURL string, expiresAt *time.Time) error {
	err := conn(r.db, tx).WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"external_id": externalID,
			"payment_url": paymentURL,
			"expires_at":  expiresAt,
			"updated_at":  gorm.Expr("now()"),
		}).Error
	if err != nil {
		r.logger.Error("Failed to attach provider data to payment",
			zap.Int64("payment_id", id),
			zap.String("external_id", externalID),
			zap.Error(err))
		return fmt.Errorf("failed to attach provider data: %w", err)
	}
	return nil
}

// TransitionFromCreated guards the status change in the WHERE clause, so two
// finalizations racing past an earlier status read still produce exactly one
// transition: the loser matches zero rows and reports false.
func (r *paymentRepository) TransitionFromCreated(ctx context.Context, tx repository.Tx, id int64, status model.PaymentStatus, metadata model.JSONB) (bool, error) {
	res := conn(r.db, tx).WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.PaymentStatusCreated).
		Updates(map[string]interface{}{
			"status":     status,
			"metadata":   metadata,
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		r.logger.Error("Failed to update payment status",
			zap.Int64("payment_id", id),
			zap.String("status", string(status)),
			zap.Error(res.Error))
		return false, fmt.Errorf("failed to update payment status: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
