package model

import "time"

// WebhookEvent stores inbound provider webhook notifications with
// deduplication metadata. Events are recorded after signature verification so
// redeliveries and out-of-order notifications stay auditable.
type WebhookEvent struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Provider        string     `gorm:"size:50;not null;uniqueIndex:ux_webhook_events_provider_event,priority:1" json:"provider"`
	ProviderEventID string     `gorm:"size:255;not null;uniqueIndex:ux_webhook_events_provider_event,priority:2" json:"provider_event_id"`
	EventType       string     `gorm:"size:100;not null;index" json:"event_type"`
	Payload         JSONB      `gorm:"type:jsonb" json:"payload,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	LastError       *string    `json:"last_error,omitempty"`
	CreatedAt       time.Time  `gorm:"default:now();index" json:"created_at"`
}

// TableName specifies the table name for GORM
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
