package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSubscription is the single active-plan record per user. ExpiresAt is
// extended by completed orders: a still-valid subscription stacks the new
// duration on top of its current expiry, an expired one restarts from now.
type UserSubscription struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	LastPlanID  int64     `gorm:"not null" json:"last_plan_id"`
	LastOrderID int64     `gorm:"not null" json:"last_order_id"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

// Active reports whether the subscription is still valid at the given instant.
func (s *UserSubscription) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// StackExpiry computes the expiry that results from applying durationDays on
// top of a previous expiry. It mirrors the conditional expression the
// subscription upsert executes in SQL: a previous expiry still in the future
// is extended, anything else restarts from now.
func StackExpiry(prev *time.Time, now time.Time, durationDays int) time.Time {
	if prev != nil && prev.After(now) {
		return prev.AddDate(0, 0, durationDays)
	}
	return now.AddDate(0, 0, durationDays)
}
