package entity

import "time"

// SubscriptionResult describes the caller's current subscription state
type SubscriptionResult struct {
	Active      bool      `json:"active"`
	PlanCode    string    `json:"plan_code,omitempty"`
	LastOrderID int64     `json:"last_order_id,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
