package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

// RunInPlayerTx wraps the unit of work in a database transaction. Same-player
// serialization comes from the versioned UPDATE on player_stats: a concurrent
// call that read the same version loses the write and surfaces ErrConflict.
func (t TxManager) RunInPlayerTx(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
