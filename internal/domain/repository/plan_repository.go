package repository

import (
	"context"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// PlanRepository reads the plan catalog. The engine never writes plans.
type PlanRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Plan, error)
	GetByID(ctx context.Context, id int64) (*model.Plan, error)
	ListActive(ctx context.Context) ([]model.Plan, error)
}
