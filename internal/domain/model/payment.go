package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment attempt
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Scan implements sql.Scanner interface
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		*s = PaymentStatusCreated
	}
	return nil
}

// Value implements driver.Valuer interface
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Terminal reports whether the status admits no further transitions.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment represents one attempt to collect money for an order through a
// specific provider. The payment with the highest id is the authoritative one
// for its order.
type Payment struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID             int64           `gorm:"not null;index" json:"order_id"`
	Amount              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status              PaymentStatus   `gorm:"size:20;not null;default:'created';index" json:"status"`
	ExternalID          *string         `gorm:"unique;size:191" json:"external_id,omitempty"`
	PaymentProviderCode string          `gorm:"size:50;not null" json:"payment_provider_code"`
	PaymentURL          string          `gorm:"size:2048" json:"payment_url,omitempty"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	Metadata            JSONB           `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt           time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
