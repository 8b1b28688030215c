package repository

import (
	"context"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// WebhookEventRepository records inbound webhook notifications idempotently.
type WebhookEventRepository interface {
	// CreateIfNotExists inserts the event unless one with the same provider and
	// provider event id already exists. Returns true when the row was created.
	CreateIfNotExists(ctx context.Context, event *model.WebhookEvent) (bool, error)

	// MarkProcessed stamps the event with a processing time and optional error.
	MarkProcessed(ctx context.Context, id int64, processingErr error) error
}
