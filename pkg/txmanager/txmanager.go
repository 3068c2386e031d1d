package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitrineapp/VA-BookingService/pkg/dbmetrics"
)

// TransactionManager runs functions inside database transactions over a
// metrics-wrapped connection pool. The transaction is carried through the
// context so repositories transparently join it via dbmetrics.GetExecutor.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a transaction manager over the wrapped pool.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. Used by write
// paths that must not race with concurrent bookings.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.Unwrap().BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}
	return nil
}
