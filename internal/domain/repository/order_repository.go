package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// OrderRepository persists orders. All writes take the caller's unit-of-work
// handle; reads go straight to the store of record.
type OrderRepository interface {
	Create(ctx context.Context, tx Tx, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, tx Tx, id int64, status model.OrderStatus) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Order, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
