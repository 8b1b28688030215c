package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.Plan{},
		&model.Order{},
		&model.Payment{},
		&model.UserSubscription{},
		&model.WebhookEvent{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
