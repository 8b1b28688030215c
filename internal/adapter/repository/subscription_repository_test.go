package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	domainErrors "github.com/helioworks/payment-service/internal/domain/errors"
)

func TestSubscriptionRepository_ExtendOrCreate_ExpiryGuard(t *testing.T) {
	// The guard rejects unusable durations before any database access, so no
	// connection is needed.
	repo := NewSubscriptionRepository(nil, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name         string
		durationDays int
	}{
		{"zero duration", 0},
		{"negative duration", -30},
		{"duration past the maximum timestamp year", 4_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.ExtendOrCreate(ctx, nil, userID, 1, 10, tt.durationDays)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidExpiration)
		})
	}
}
