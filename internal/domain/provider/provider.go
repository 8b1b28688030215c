package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProvider defines the capability contract every payment provider
// implements. Hosted-checkout providers resolve asynchronously through
// webhooks plus an out-of-band Check call; polling providers resolve Check
// synchronously against their own API.
type PaymentProvider interface {
	// Code returns the provider code used for registry lookup and persistence
	Code() string

	// Initiate creates the provider-side payment for a local order/payment pair
	Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error)

	// Check resolves the authoritative status of a previously initiated
	// payment. It must ask the provider's source of truth and never trust an
	// inbound webhook alone.
	Check(ctx context.Context, externalID string) (*CheckResult, error)

	// ParseWebhook verifies the payload signature and normalizes the event.
	// Verification happens before any parsing of the body.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// InitiateRequest represents a provider-agnostic payment initiation request
type InitiateRequest struct {
	OrderID   int64           `json:"order_id"`
	PaymentID int64           `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	PlanName  string          `json:"plan_name"`
}

// InitiateResponse represents the provider-side handle for an initiated payment
type InitiateResponse struct {
	ExternalID  string     `json:"external_id"`
	CheckoutURL string     `json:"checkout_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ResolvedStatus is the provider's authoritative answer about a payment
type ResolvedStatus string

const (
	ResolvedStatusStillPending ResolvedStatus = "still_pending"
	ResolvedStatusCompleted    ResolvedStatus = "completed"
	ResolvedStatusFailed       ResolvedStatus = "failed"
)

// CheckResult carries the resolved status plus an opaque metadata blob for audit
type CheckResult struct {
	Status   ResolvedStatus         `json:"status"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// WebhookEventType classifies inbound webhook notifications
type WebhookEventType string

const (
	// WebhookEventCheckoutCompleted signals the provider considers the checkout paid
	WebhookEventCheckoutCompleted WebhookEventType = "checkout_completed"
	// WebhookEventCheckoutExpired signals the checkout expired or was cancelled
	WebhookEventCheckoutExpired WebhookEventType = "checkout_expired"
	// WebhookEventIgnored covers every event type the engine does not act on
	WebhookEventIgnored WebhookEventType = "ignored"
)

// WebhookEvent is a verified, normalized provider webhook notification.
// ClientReference carries the local payment id the provider echoes back.
type WebhookEvent struct {
	EventID         string                 `json:"event_id"`
	Type            WebhookEventType       `json:"type"`
	RawType         string                 `json:"raw_type"`
	ClientReference string                 `json:"client_reference,omitempty"`
	Data            map[string]interface{} `json:"data,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ProviderError represents a failure reported by or about a payment provider
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
