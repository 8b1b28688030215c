package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/helioworks/payment-service/internal/adapter/repository"
	domainRepo "github.com/helioworks/payment-service/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	TxManager    domainRepo.TxManager
	Plan         domainRepo.PlanRepository
	Order        domainRepo.OrderRepository
	Payment      domainRepo.PaymentRepository
	Subscription domainRepo.SubscriptionRepository
	WebhookEvent domainRepo.WebhookEventRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		TxManager:    repository.NewTxManager(db),
		Plan:         repository.NewPlanRepository(db, logger),
		Order:        repository.NewOrderRepository(db, logger),
		Payment:      repository.NewPaymentRepository(db, logger),
		Subscription: repository.NewSubscriptionRepository(db, logger),
		WebhookEvent: repository.NewWebhookEventRepository(db, logger),
	}
}
