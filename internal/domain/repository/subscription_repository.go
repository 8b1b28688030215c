package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// SubscriptionRepository maintains the single active-plan row per user.
type SubscriptionRepository interface {
	// ExtendOrCreate upserts the user's subscription row: a missing or expired
	// subscription restarts from now, a still-valid one stacks durationDays on
	// top of its current expiry. The conditional arithmetic executes as one
	// atomic statement so concurrent finalizations never lose an extension.
	ExtendOrCreate(ctx context.Context, tx Tx, userID uuid.UUID, planID, orderID int64, durationDays int) error

	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserSubscription, error)
}
