package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helioworks/payment-service/internal/domain/model"
)

func TestStackExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active subscription stacks on top of current expiry", func(t *testing.T) {
		prev := now.Add(10 * 24 * time.Hour)

		result := model.StackExpiry(&prev, now, 30)

		assert.Equal(t, prev.AddDate(0, 0, 30), result)
	})

	t.Run("expired subscription restarts from now", func(t *testing.T) {
		prev := now.Add(-24 * time.Hour)

		result := model.StackExpiry(&prev, now, 30)

		assert.Equal(t, now.AddDate(0, 0, 30), result)
	})

	t.Run("no previous subscription starts from now", func(t *testing.T) {
		result := model.StackExpiry(nil, now, 90)

		assert.Equal(t, now.AddDate(0, 0, 90), result)
	})

	t.Run("expiry exactly now restarts rather than stacks", func(t *testing.T) {
		prev := now

		result := model.StackExpiry(&prev, now, 30)

		assert.Equal(t, now.AddDate(0, 0, 30), result)
	})

	t.Run("consecutive purchases accumulate", func(t *testing.T) {
		first := model.StackExpiry(nil, now, 30)
		second := model.StackExpiry(&first, now, 30)
		third := model.StackExpiry(&second, now, 365)

		assert.Equal(t, now.AddDate(0, 0, 425), third)
	})
}

func TestUserSubscription_Active(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sub := &model.UserSubscription{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, sub.Active(now))

	sub.ExpiresAt = now.Add(-time.Hour)
	assert.False(t, sub.Active(now))

	sub.ExpiresAt = now
	assert.False(t, sub.Active(now))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, model.OrderStatusCreated.Terminal())
	assert.True(t, model.OrderStatusCompleted.Terminal())
	assert.True(t, model.OrderStatusFailed.Terminal())

	assert.False(t, model.PaymentStatusCreated.Terminal())
	assert.True(t, model.PaymentStatusCompleted.Terminal())
	assert.True(t, model.PaymentStatusFailed.Terminal())
}
