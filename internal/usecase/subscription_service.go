package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/domain/entity"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

// SubscriptionService reads the subscription state the settlement engine
// maintains
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	logger           *zap.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.PlanRepository,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// GetCurrentSubscription returns the user's subscription together with the
// plan behind its last extension. ErrSubscriptionNotFound means the user has
// never completed an order.
func (s *SubscriptionService) GetCurrentSubscription(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionResult, error) {
	sub, err := s.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &entity.SubscriptionResult{
		Active:      sub.Active(time.Now()),
		LastOrderID: sub.LastOrderID,
		ExpiresAt:   sub.ExpiresAt,
	}

	plan, err := s.planRepo.GetByID(ctx, sub.LastPlanID)
	if err != nil {
		// The catalog row may have been retired; expiry is still authoritative.
		s.logger.Warn("Subscription references unknown plan",
			zap.String("user_id", userID.String()),
			zap.Int64("plan_id", sub.LastPlanID),
			zap.Error(err))
		return result, nil
	}
	result.PlanCode = plan.Code

	return result, nil
}
