package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/domain/provider"
	"github.com/helioworks/payment-service/internal/domain/repository"
)

// SettlementService drives payments from created to a terminal state. Webhooks
// only point at a payment; the provider's Check API is the source of truth for
// what actually happened.
type SettlementService struct {
	txManager        repository.TxManager
	planRepo         repository.PlanRepository
	orderRepo        repository.OrderRepository
	paymentRepo      repository.PaymentRepository
	subscriptionRepo repository.SubscriptionRepository
	webhookEventRepo repository.WebhookEventRepository
	providers        ProviderRegistry
	providerTimeout  time.Duration
	logger           *zap.Logger
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(
	txManager repository.TxManager,
	planRepo repository.PlanRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	subscriptionRepo repository.SubscriptionRepository,
	webhookEventRepo repository.WebhookEventRepository,
	providers ProviderRegistry,
	providerTimeout time.Duration,
	logger *zap.Logger,
) *SettlementService {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	return &SettlementService{
		txManager:        txManager,
		planRepo:         planRepo,
		orderRepo:        orderRepo,
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		webhookEventRepo: webhookEventRepo,
		providers:        providers,
		providerTimeout:  providerTimeout,
		logger:           logger,
	}
}

// HandleWebhook verifies and records an inbound provider notification, then
// finalizes the payment it references. Signature verification happens inside
// the provider before any part of the payload is trusted.
func (s *SettlementService) HandleWebhook(ctx context.Context, providerCode string, payload []byte, signature string) error {
	prov, err := s.providers.GetProvider(providerCode)
	if err != nil {
		return err
	}

	event, err := prov.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidSignature) {
			s.logger.Warn("Rejected webhook with invalid signature",
				zap.String("provider", prov.Code()))
			return err
		}
		return classify(err, "failed to parse webhook")
	}

	record := &model.WebhookEvent{
		Provider:        prov.Code(),
		ProviderEventID: event.EventID,
		EventType:       event.RawType,
		Payload:         model.JSONB(event.Data),
	}
	created, err := s.webhookEventRepo.CreateIfNotExists(ctx, record)
	if err != nil {
		return classify(err, "failed to record webhook event")
	}
	if !created {
		s.logger.Info("Webhook event already recorded",
			zap.String("provider", prov.Code()),
			zap.String("event_id", event.EventID))
	}

	if event.Type == provider.WebhookEventIgnored {
		s.markProcessed(ctx, record.ID, nil)
		return nil
	}

	paymentID, err := strconv.ParseInt(event.ClientReference, 10, 64)
	if err != nil || paymentID <= 0 {
		s.logger.Warn("Webhook carries unusable client reference",
			zap.String("provider", prov.Code()),
			zap.String("event_id", event.EventID),
			zap.String("client_reference", event.ClientReference))
		s.markProcessed(ctx, record.ID, domainErrors.ErrInvalidReference)
		return domainErrors.ErrInvalidReference
	}

	finalizeErr := s.Finalize(ctx, paymentID)
	s.markProcessed(ctx, record.ID, finalizeErr)
	return finalizeErr
}

// Finalize resolves one payment against the provider and applies the outcome
// in a single unit of work: payment status, order status and, on success, the
// user's subscription move together. A payment already in a terminal state is
// left untouched, which makes redelivered webhooks and races between delivery
// and reconciliation harmless.
func (s *SettlementService) Finalize(ctx context.Context, paymentID int64) error {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if payment.Status.Terminal() {
		s.logger.Info("Payment already finalized",
			zap.Int64("payment_id", payment.ID),
			zap.String("status", string(payment.Status)))
		return nil
	}

	if payment.ExternalID == nil || *payment.ExternalID == "" {
		return domainErrors.NewUnexpectedError("payment has no provider handle", nil)
	}

	prov, err := s.providers.GetProvider(payment.PaymentProviderCode)
	if err != nil {
		return err
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	res, err := prov.Check(checkCtx, *payment.ExternalID)
	if err != nil {
		return classify(err, "provider status check failed")
	}

	if res.Status == provider.ResolvedStatusStillPending {
		s.logger.Info("Payment still pending at provider",
			zap.Int64("payment_id", payment.ID),
			zap.String("provider", prov.Code()))
		return nil
	}

	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}

	plan, err := s.planRepo.GetByID(ctx, order.PlanID)
	if err != nil {
		return err
	}

	// The payment transition is conditional on the row still being created,
	// inside the same transaction as the order and subscription writes. The
	// earlier status read is only an optimization; this is the real guard
	// against two finalizations settling the same payment.
	var transitioned bool
	err = s.txManager.Transact(ctx, func(tx repository.Tx) error {
		switch res.Status {
		case provider.ResolvedStatusCompleted:
			moved, err := s.paymentRepo.TransitionFromCreated(ctx, tx, payment.ID,
				model.PaymentStatusCompleted, model.JSONB(res.Metadata))
			if err != nil {
				return err
			}
			if !moved {
				return nil
			}
			transitioned = true
			if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusCompleted); err != nil {
				return err
			}
			return s.subscriptionRepo.ExtendOrCreate(ctx, tx,
				order.UserID, plan.ID, order.ID, plan.DurationDays)

		case provider.ResolvedStatusFailed:
			moved, err := s.paymentRepo.TransitionFromCreated(ctx, tx, payment.ID,
				model.PaymentStatusFailed, model.JSONB(res.Metadata))
			if err != nil {
				return err
			}
			if !moved {
				return nil
			}
			transitioned = true
			return s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusFailed)

		default:
			return domainErrors.NewUnexpectedError("provider returned unknown status: "+string(res.Status), nil)
		}
	})
	if err != nil {
		s.logger.Error("Failed to finalize payment",
			zap.Int64("payment_id", payment.ID),
			zap.String("resolved_status", string(res.Status)),
			zap.Error(err))
		return classify(err, "payment finalization failed")
	}

	if !transitioned {
		s.logger.Info("Payment was finalized concurrently elsewhere",
			zap.Int64("payment_id", payment.ID))
		return nil
	}

	s.logger.Info("Payment finalized",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("order_id", order.ID),
		zap.String("resolved_status", string(res.Status)))
	return nil
}

func (s *SettlementService) markProcessed(ctx context.Context, eventID int64, processingErr error) {
	if eventID == 0 {
		return
	}
	if err := s.webhookEventRepo.MarkProcessed(ctx, eventID, processingErr); err != nil {
		s.logger.Warn("Failed to mark webhook event processed",
			zap.Int64("event_id", eventID),
			zap.Error(err))
	}
}

// classify passes domain errors through untouched and wraps everything else
// so callers can map infrastructure failures to a generic response.
func classify(err error, message string) error {
	var unexpected *domainErrors.UnexpectedError
	if errors.As(err, &unexpected) {
		return err
	}
	for _, sentinel := range []error{
		domainErrors.ErrPlanNotFound,
		domainErrors.ErrOrderNotFound,
		domainErrors.ErrPaymentNotFound,
		domainErrors.ErrSubscriptionNotFound,
		domainErrors.ErrInvalidPaymentProvider,
		domainErrors.ErrInvalidSignature,
		domainErrors.ErrInvalidReference,
		domainErrors.ErrInvalidAmount,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return domainErrors.NewUnexpectedError(message, err)
}
