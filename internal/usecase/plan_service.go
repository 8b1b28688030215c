package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/domain/entity"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

// PlanService exposes the purchasable plan catalog
type PlanService struct {
	planRepo repository.PlanRepository
	logger   *zap.Logger
}

// NewPlanService creates a new plan service instance
func NewPlanService(planRepo repository.PlanRepository, logger *zap.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

// ListActivePlans returns every plan that can currently be ordered
func (s *PlanService) ListActivePlans(ctx context.Context) ([]entity.PlanResult, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		return nil, classify(err, "failed to list plans")
	}

	results := make([]entity.PlanResult, len(plans))
	for i, plan := range plans {
		results[i] = entity.PlanResult{
			Code:         plan.Code,
			Name:         plan.Name,
			Description:  plan.Description,
			Price:        plan.Price,
			DurationDays: plan.DurationDays,
		}
	}
	return results, nil
}
