package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan represents an immutable catalog entry describing a purchasable
// subscription period. The engine only ever reads plans; price changes are
// catalog operations and never touch existing orders.
type Plan struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         string          `gorm:"unique;not null;size:50" json:"code"`
	Name         string          `gorm:"not null;size:200" json:"name"`
	Description  string          `gorm:"size:500" json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	DurationDays int             `gorm:"not null" json:"duration_days"`
	SortOrder    int             `gorm:"default:0" json:"sort_order"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Plan) TableName() string {
	return "plans"
}
