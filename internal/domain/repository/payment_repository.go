package repository

import (
	"context"
	"time"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// PaymentRepository persists payment attempts. The payment with the highest
// id per order is the authoritative one.
type PaymentRepository interface {
	Create(ctx context.Context, tx Tx, payment *model.Payment) error
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	GetLastByOrderID(ctx context.Context, orderID int64) (*model.Payment, error)
	AttachProviderData(ctx context.Context, tx Tx, id int64, externalID, paymentURL string, expiresAt *time.Time) error

	// TransitionFromCreated atomically moves a still-created payment into the
	// given terminal status. Returns false when the payment already left the
	// created state, so concurrent finalizations resolve to exactly one winner.
	TransitionFromCreated(ctx context.Context, tx Tx, id int64, status model.PaymentStatus, metadata model.JSONB) (bool, error)
}
