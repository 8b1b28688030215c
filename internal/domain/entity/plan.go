package entity

import (
	"github.com/shopspring/decimal"
)

// PlanResult is the public representation of a purchasable plan
type PlanResult struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
}
