package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/helioworks/payment-service/internal/domain/model"
)

// CreateOrderResult is returned to the caller after an order has been created
// and its payment initiated.
type CreateOrderResult struct {
	ID         int64             `json:"id"`
	Status     model.OrderStatus `json:"status"`
	PaymentURL string            `json:"payment_url"`
}

// OrderDetailResult describes one order together with its authoritative
// payment. PaymentURL is only populated while the order is still payable.
type OrderDetailResult struct {
	ID                int64             `json:"id"`
	PlanCode          string            `json:"plan_code"`
	Total             decimal.Decimal   `json:"total"`
	Status            model.OrderStatus `json:"status"`
	PaymentURL        string            `json:"payment_url,omitempty"`
	PaymentExpireDate *time.Time        `json:"payment_expire_date,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// OrderListItem is the list representation of an order
type OrderListItem struct {
	ID        int64             `json:"id"`
	PlanID    int64             `json:"plan_id"`
	Total     decimal.Decimal   `json:"total"`
	Status    model.OrderStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// PaginatedOrdersResult represents a page of a user's orders
type PaginatedOrdersResult struct {
	Data       []OrderListItem `json:"data"`
	Pagination PaginationMeta  `json:"pagination"`
}
