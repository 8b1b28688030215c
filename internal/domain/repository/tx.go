package repository

import "context"

// Tx is an opaque unit-of-work handle threaded through ledger writes. The
// GORM adapter binds it to a database transaction; tests substitute anything.
type Tx interface{}

// TxManager opens one unit of work per logical operation. The function either
// commits as a whole or rolls back as a whole; partial visibility of the
// writes inside fn is never observable.
type TxManager interface {
	Transact(ctx context.Context, fn func(tx Tx) error) error
}
