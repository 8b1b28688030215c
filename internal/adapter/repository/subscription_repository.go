package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

// maxExpiryYear bounds the stacked expiry to the range a SQL timestamp can
// hold; anything beyond it means the duration arithmetic ran away.
const maxExpiryYear = 9999

type subscriptionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSubscriptionRepository creates a new user subscription repository
func NewSubscriptionRepository(db *gorm.DB, logger *zap.Logger) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db, logger: logger}
}

// ExtendOrCreate upserts the single subscription row per user. The stacking
// decision runs inside the ON CONFLICT assignment as one SQL CASE expression,
// so two concurrent finalizations for the same user both land their extension
// instead of racing through a read-modify-write cycle.
func (r *subscriptionRepository) ExtendOrCreate(ctx context.Context, tx repository.Tx, userID uuid.UUID, planID, orderID int64, durationDays int) error {
	now := time.Now()
	freshExpiry := model.StackExpiry(nil, now, durationDays)
	if durationDays <= 0 || !freshExpiry.After(now) || freshExpiry.Year() > maxExpiryYear {
		return domainErrors.ErrInvalidExpiration
	}

	sub := &model.UserSubscription{
		UserID:      userID,
		LastPlanID:  planID,
		LastOrderID: orderID,
		ExpiresAt:   freshExpiry,
	}

	err := conn(r.db, tx).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_plan_id":  planID,
			"last_order_id": orderID,
			"expires_at": gorm.Expr(
				`CASE WHEN user_subscriptions.expires_at > now()
				      THEN user_subscriptions.expires_at + make_interval(days => ?)
				      ELSE now() + make_interval(days => ?)
				 END`, durationDays, durationDays),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(sub).Error
	if err != nil {
		r.logger.Error("Failed to upsert user subscription",
			zap.String("user_id", userID.String()),
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserSubscription, error) {
	var sub model.UserSubscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrSubscriptionNotFound
		}
		r.logger.Error("Failed to get user subscription",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}
