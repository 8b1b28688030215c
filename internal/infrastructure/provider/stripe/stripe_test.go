package stripe

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
	"github.com/helioworks/payment-service/internal/domain/provider"
)

const testWebhookSecret = "whsec_test_secret"

func testProvider() *StripeProvider {
	return NewStripeProvider(Config{
		SecretKey:     "sk_test_key",
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://example.com/success",
		CancelURL:     "https://example.com/cancel",
	}, zap.NewNop())
}

// signPayload builds a Stripe-Signature header the same way Stripe's servers do
func signPayload(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func TestStripeProvider_ParseWebhook(t *testing.T) {
	p := testProvider()

	completedPayload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"created": 1756400000,
		"data": {
			"object": {
				"id": "cs_test_abc",
				"object": "checkout.session",
				"client_reference_id": "20",
				"status": "complete",
				"payment_status": "paid"
			}
		}
	}`)

	t.Run("valid signature yields a normalized completed event", func(t *testing.T) {
		signature := signPayload(completedPayload, testWebhookSecret, time.Now())

		event, err := p.ParseWebhook(completedPayload, signature)

		assert.NoError(t, err)
		assert.Equal(t, "evt_1", event.EventID)
		assert.Equal(t, provider.WebhookEventCheckoutCompleted, event.Type)
		assert.Equal(t, "checkout.session.completed", event.RawType)
		assert.Equal(t, "20", event.ClientReference)
		assert.Equal(t, "complete", event.Data["session_status"])
	})

	t.Run("expired session event is normalized", func(t *testing.T) {
		payload := []byte(`{
			"id": "evt_2",
			"type": "checkout.session.expired",
			"created": 1756400000,
			"data": {
				"object": {
					"id": "cs_test_abc",
					"object": "checkout.session",
					"client_reference_id": "20",
					"status": "expired",
					"payment_status": "unpaid"
				}
			}
		}`)
		signature := signPayload(payload, testWebhookSecret, time.Now())

		event, err := p.ParseWebhook(payload, signature)

		assert.NoError(t, err)
		assert.Equal(t, provider.WebhookEventCheckoutExpired, event.Type)
		assert.Equal(t, "20", event.ClientReference)
	})

	t.Run("unrelated event types are marked ignored", func(t *testing.T) {
		payload := []byte(`{
			"id": "evt_3",
			"type": "invoice.paid",
			"created": 1756400000,
			"data": {"object": {}}
		}`)
		signature := signPayload(payload, testWebhookSecret, time.Now())

		event, err := p.ParseWebhook(payload, signature)

		assert.NoError(t, err)
		assert.Equal(t, provider.WebhookEventIgnored, event.Type)
		assert.Empty(t, event.ClientReference)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		signature := signPayload(completedPayload, "whsec_other", time.Now())

		event, err := p.ParseWebhook(completedPayload, signature)

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidSignature)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		signature := signPayload(completedPayload, testWebhookSecret, time.Now())
		tampered := append([]byte{}, completedPayload...)
		tampered[len(tampered)-2] = ' '

		event, err := p.ParseWebhook(tampered, signature)

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidSignature)
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		signature := signPayload(completedPayload, testWebhookSecret, time.Now().Add(-time.Hour))

		event, err := p.ParseWebhook(completedPayload, signature)

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidSignature)
	})

	t.Run("garbage header is rejected", func(t *testing.T) {
		event, err := p.ParseWebhook(completedPayload, "not-a-signature")

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidSignature)
	})
}

func TestResolveSessionStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        stripego.CheckoutSessionStatus
		paymentStatus stripego.CheckoutSessionPaymentStatus
		want          provider.ResolvedStatus
	}{
		{"complete and paid", stripego.CheckoutSessionStatusComplete, stripego.CheckoutSessionPaymentStatusPaid, provider.ResolvedStatusCompleted},
		{"complete with no payment required", stripego.CheckoutSessionStatusComplete, stripego.CheckoutSessionPaymentStatusNoPaymentRequired, provider.ResolvedStatusCompleted},
		{"complete but still settling", stripego.CheckoutSessionStatusComplete, stripego.CheckoutSessionPaymentStatusUnpaid, provider.ResolvedStatusStillPending},
		{"expired", stripego.CheckoutSessionStatusExpired, stripego.CheckoutSessionPaymentStatusUnpaid, provider.ResolvedStatusFailed},
		{"open", stripego.CheckoutSessionStatusOpen, stripego.CheckoutSessionPaymentStatusUnpaid, provider.ResolvedStatusStillPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &stripego.CheckoutSession{
				Status:        tt.status,
				PaymentStatus: tt.paymentStatus,
			}
			assert.Equal(t, tt.want, resolveSessionStatus(session))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		want    int64
		wantErr bool
	}{
		{"two dollars", decimal.NewFromFloat(2.00), 200, false},
		{"fifty cents", decimal.NewFromFloat(0.50), 50, false},
		{"large amount", decimal.NewFromInt(1500), 150000, false},
		{"fractional cents", decimal.NewFromFloat(1.005), 0, true},
		{"zero", decimal.Zero, 0, true},
		{"negative", decimal.NewFromFloat(-2.00), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toMinorUnits(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainErrors.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
