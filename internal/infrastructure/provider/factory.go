package provider

import (
	"strings"

	"go.uber.org/zap"

	"github.com/helioworks/payment-service/internal/config"
	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/provider"
	stripeProvider "github.com/helioworks/payment-service/internal/infrastructure/provider/stripe"
	tossProvider "github.com/helioworks/payment-service/internal/infrastructure/provider/toss"
)

// Factory resolves provider codes to payment providers. Adding a provider
// means adding a case here; the engine never changes.
type Factory struct {
	config *config.Config
	logger *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		config: cfg,
		logger: logger,
	}
}

// GetProvider returns the payment provider registered for the given code.
// Codes are case-insensitive; unknown or unconfigured codes resolve to
// ErrInvalidPaymentProvider.
func (f *Factory) GetProvider(code string) (provider.PaymentProvider, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case stripeProvider.ProviderCode:
		return f.createStripeProvider()
	case tossProvider.ProviderCode:
		return f.createTossProvider()
	default:
		return nil, domainErrors.ErrInvalidPaymentProvider
	}
}

func (f *Factory) createStripeProvider() (provider.PaymentProvider, error) {
	cfg := f.config.Service.Stripe
	if cfg.SecretKey == "" {
		return nil, domainErrors.ErrInvalidPaymentProvider
	}

	return stripeProvider.NewStripeProvider(stripeProvider.Config{
		SecretKey:     cfg.SecretKey,
		WebhookSecret: cfg.WebhookSecret,
		SuccessURL:    cfg.SuccessURL,
		CancelURL:     cfg.CancelURL,
		Currency:      cfg.Currency,
	}, f.logger), nil
}

func (f *Factory) createTossProvider() (provider.PaymentProvider, error) {
	cfg := f.config.Service.Toss
	if cfg.SecretKey == "" {
		return nil, domainErrors.ErrInvalidPaymentProvider
	}

	return tossProvider.NewTossProvider(cfg.SecretKey, cfg.ClientKey, f.logger), nil
}
