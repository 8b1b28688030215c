package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helioworks/payment-service/internal/domain/repository"
)

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a unit-of-work manager backed by database transactions
func NewTxManager(db *gorm.DB) repository.TxManager {
	return &txManager{db: db}
}

// Transact runs fn inside one database transaction. Any error (or panic)
// inside fn rolls the whole transaction back; a nil return commits it.
func (m *txManager) Transact(ctx context.Context, fn func(tx repository.Tx) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}

// conn resolves the handle a repository call should use: the caller's
// transaction when one is supplied, the shared pool otherwise.
func conn(db *gorm.DB, tx repository.Tx) *gorm.DB {
	if g, ok := tx.(*gorm.DB); ok && g != nil {
		return g
	}
	return db
}
