package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

type webhookEventRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB, logger *zap.Logger) repository.WebhookEventRepository {
	return &webhookEventRepository{db: db, logger: logger}
}

func (r *webhookEventRepository) CreateIfNotExists(ctx context.Context, event *model.WebhookEvent) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_event_id"}},
		DoNothing: true,
	}).Create(event)
	if res.Error != nil {
		r.logger.Error("Failed to record webhook event",
			zap.String("provider", event.Provider),
			zap.String("provider_event_id", event.ProviderEventID),
			zap.Error(res.Error))
		return false, fmt.Errorf("failed to record webhook event: %w", res.Error)
	}

	created := res.RowsAffected > 0
	if !created {
		// Populate the id of the stored row so callers can still mark it.
		err := r.db.WithContext(ctx).
			Where("provider = ? AND provider_event_id = ?", event.Provider, event.ProviderEventID).
			First(event).Error
		if err != nil {
			return false, fmt.Errorf("failed to load existing webhook event: %w", err)
		}
	}
	return created, nil
}

func (r *webhookEventRepository) MarkProcessed(ctx context.Context, id int64, processingErr error) error {
	now := time.Now()
	updates := map[string]interface{}{
		"processed_at": &now,
		"last_error":   nil,
	}
	if processingErr != nil {
		msg := processingErr.Error()
		updates["last_error"] = &msg
	}

	err := r.db.WithContext(ctx).
		Model(&model.WebhookEvent{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		r.logger.Error("Failed to mark webhook event processed",
			zap.Int64("event_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}
	return nil
}
