package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/vitrineapp/VA-BookingService/pkg/metrics"
)

// Executor is the subset of database/sql used by the repositories.
// Both *sql.DB, *sql.Tx and the metrics wrapper satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txContextKey struct{}

// WithTx stores an active transaction in the context so repositories pick
// it up through GetExecutor.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction carried by the context, or the
// fallback executor when no transaction is active.
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return fallback
}

// DB wraps *sql.DB and records query metrics around every call.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap returns a metrics-recording wrapper around db.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and starts a background collector publishing
// connection-pool gauges every 10 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, poolName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(poolName, stats.OpenConnections, stats.InUse, stats.Idle)
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// Unwrap exposes the underlying *sql.DB for transaction management.
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

// ExecContext executes a query recording its duration.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

// QueryContext runs a query recording its duration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext runs a single-row query recording its duration.
// Row errors surface on Scan, so the observation records success here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}
