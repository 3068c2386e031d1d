package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitrineapp/VA-BookingService/pkg/dbmetrics"
)

// TransactionManager is the metrics-free variant of pkg/txmanager, used
// when metrics collection is disabled.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over a raw pool.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
	}
	return nil
}
