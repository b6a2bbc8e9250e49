package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/tablebook/reservation-service/pkg/dbmetrics"
	"github.com/tablebook/reservation-service/pkg/txmanager"
)

// beginner адаптер *sql.DB под txmanager.TxBeginner (без метрик)
type beginner struct {
	db *sql.DB
}

func (b *beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает transaction manager поверх чистого *sql.DB
// Используется при выключенных метриках
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&beginner{db: db})
}
