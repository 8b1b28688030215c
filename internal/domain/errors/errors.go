package errors

import "errors"

var (
	// ErrPlanNotFound indicates the requested plan code or id is not in the catalog
	ErrPlanNotFound = errors.New("plan not found")

	// ErrOrderNotFound indicates the specified order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrPaymentNotFound indicates no payment exists for the given id or order
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrSubscriptionNotFound indicates the user has no subscription record
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidPaymentProvider indicates the provider code resolves to no registered provider
	ErrInvalidPaymentProvider = errors.New("invalid payment provider")

	// ErrInvalidSignature indicates a webhook payload failed signature verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidReference indicates a webhook carried no parseable payment reference
	ErrInvalidReference = errors.New("invalid payment reference")

	// ErrInvalidAmount indicates a non-positive or non-convertible charge amount
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidExpiration indicates subscription date arithmetic produced an unusable expiry
	ErrInvalidExpiration = errors.New("invalid subscription expiration")
)
