package toss

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/domain/provider"
)

const (
	// ProviderCode identifies Toss Payments in the provider registry
	ProviderCode = "toss"

	tossAPIBaseURL = "https://api.tosspayments.com"
	tossAPIVersion = "v1"
)

// TossProvider is the polling-style provider: payments are confirmed
// synchronously against the Toss API instead of settling through webhooks.
// The capability surface is registered but not implemented yet.
type TossProvider struct {
	secretKey string
	clientKey string
	client    *http.Client
	logger    *zap.Logger
}

// NewTossProvider creates a new Toss provider (stub)
func NewTossProvider(secretKey, clientKey string, logger *zap.Logger) *TossProvider {
	return &TossProvider{
		secretKey: secretKey,
		clientKey: clientKey,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// Code returns the provider code
func (t *TossProvider) Code() string {
	return ProviderCode
}

// Initiate creates a payment with Toss (stub)
func (t *TossProvider) Initiate(ctx context.Context, req *provider.InitiateRequest) (*provider.InitiateResponse, error) {
	t.logger.Warn("TossProvider: Initiate not implemented",
		zap.Int64("order_id", req.OrderID))

	return nil, &provider.ProviderError{
		Code:    "NOT_IMPLEMENTED",
		Message: "Toss payment initiation is not yet implemented",
	}
}

// Check resolves a payment status with Toss (stub)
func (t *TossProvider) Check(ctx context.Context, externalID string) (*provider.CheckResult, error) {
	t.logger.Warn("TossProvider: Check not implemented",
		zap.String("external_id", externalID))

	return nil, &provider.ProviderError{
		Code:    "NOT_IMPLEMENTED",
		Message: "Toss payment status check is not yet implemented",
	}
}

// ParseWebhook processes Toss webhook events (stub)
func (t *TossProvider) ParseWebhook(payload []byte, signature string) (*provider.WebhookEvent, error) {
	t.logger.Warn("TossProvider: ParseWebhook not implemented")

	return nil, &provider.ProviderError{
		Code:    "NOT_IMPLEMENTED",
		Message: "Toss webhook handling is not yet implemented",
	}
}
