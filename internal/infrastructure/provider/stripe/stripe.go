package stripe

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/provider"
)

const (
	// ProviderCode identifies Stripe in the provider registry and on payment rows
	ProviderCode = "stripe"

	// Stripe enforces a minimum checkout session lifetime of 30 minutes.
	sessionLifetime = 30 * time.Minute

	defaultCurrency = "usd"
)

// StripeProvider implements the PaymentProvider interface on top of Stripe
// hosted checkout sessions. The local payment id travels in the session's
// client_reference_id and comes back on checkout webhooks.
type StripeProvider struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	currency      string
	logger        *zap.Logger
}

// Config carries the Stripe credentials and redirect endpoints
type Config struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

// NewStripeProvider creates a new Stripe hosted checkout provider
func NewStripeProvider(cfg Config, logger *zap.Logger) *StripeProvider {
	stripe.Key = cfg.SecretKey

	currency := cfg.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &StripeProvider{
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		currency:      currency,
		logger:        logger,
	}
}

// Code returns the provider code
func (p *StripeProvider) Code() string {
	return ProviderCode
}

// Initiate creates a hosted checkout session for the payment
func (p *StripeProvider) Initiate(ctx context.Context, req *provider.InitiateRequest) (*provider.InitiateResponse, error) {
	amountCents, err := toMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(sessionLifetime)
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(formatPaymentReference(req.PaymentID)),
		ExpiresAt:         stripe.Int64(expiresAt.Unix()),
		SuccessURL:        stripe.String(p.successURL),
		CancelURL:         stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.PlanName),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.Metadata = map[string]string{
		"order_id": formatPaymentReference(req.OrderID),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		p.logger.Error("StripeProvider: failed to create checkout session",
			zap.Int64("payment_id", req.PaymentID),
			zap.Int64("order_id", req.OrderID),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "CHECKOUT_SESSION_ERROR",
			Message: "failed to create checkout session",
			Details: err.Error(),
		}
	}

	p.logger.Info("StripeProvider: checkout session created",
		zap.String("session_id", s.ID),
		zap.Int64("payment_id", req.PaymentID),
		zap.Int64("amount_cents", amountCents))

	sessionExpiry := time.Unix(s.ExpiresAt, 0)
	return &provider.InitiateResponse{
		ExternalID:  s.ID,
		CheckoutURL: s.URL,
		ExpiresAt:   &sessionExpiry,
	}, nil
}

// Check retrieves the checkout session and resolves its authoritative status.
// Webhook notifications alone are never trusted.
func (p *StripeProvider) Check(ctx context.Context, externalID string) (*provider.CheckResult, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := checkoutsession.Get(externalID, params)
	if err != nil {
		p.logger.Error("StripeProvider: failed to retrieve checkout session",
			zap.String("session_id", externalID),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "CHECKOUT_SESSION_ERROR",
			Message: "failed to retrieve checkout session",
			Details: err.Error(),
		}
	}

	metadata := map[string]interface{}{
		"session_id":     s.ID,
		"session_status": string(s.Status),
		"payment_status": string(s.PaymentStatus),
	}
	if s.PaymentIntent != nil {
		metadata["payment_intent_id"] = s.PaymentIntent.ID
	}

	return &provider.CheckResult{
		Status:   resolveSessionStatus(s),
		Metadata: metadata,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header (keyed HMAC-SHA256,
// constant-time comparison) before touching the body, then normalizes the
// event for the settlement engine.
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*provider.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		p.logger.Warn("StripeProvider: webhook signature verification failed", zap.Error(err))
		return nil, domainErrors.ErrInvalidSignature
	}

	normalized := &provider.WebhookEvent{
		EventID:   event.ID,
		RawType:   string(event.Type),
		CreatedAt: time.Unix(event.Created, 0),
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		normalized.Type = provider.WebhookEventCheckoutCompleted
	case stripe.EventTypeCheckoutSessionExpired:
		normalized.Type = provider.WebhookEventCheckoutExpired
	default:
		normalized.Type = provider.WebhookEventIgnored
		return normalized, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		p.logger.Error("StripeProvider: failed to parse checkout session from event",
			zap.String("event_id", event.ID),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "WEBHOOK_PARSE_ERROR",
			Message: "failed to parse checkout session event",
			Details: err.Error(),
		}
	}

	normalized.ClientReference = session.ClientReferenceID
	normalized.Data = map[string]interface{}{
		"session_id":     session.ID,
		"session_status": string(session.Status),
		"payment_status": string(session.PaymentStatus),
	}
	return normalized, nil
}

func resolveSessionStatus(s *stripe.CheckoutSession) provider.ResolvedStatus {
	switch s.Status {
	case stripe.CheckoutSessionStatusComplete:
		if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid ||
			s.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired {
			return provider.ResolvedStatusCompleted
		}
		// Complete but unpaid covers delayed payment methods still settling.
		return provider.ResolvedStatusStillPending
	case stripe.CheckoutSessionStatusExpired:
		return provider.ResolvedStatusFailed
	default:
		return provider.ResolvedStatusStillPending
	}
}

// toMinorUnits converts a decimal major-unit amount to integer cents.
func toMinorUnits(amount decimal.Decimal) (int64, error) {
	cents := amount.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() || !cents.IsPositive() {
		return 0, domainErrors.ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

func formatPaymentReference(id int64) string {
	return strconv.FormatInt(id, 10)
}
