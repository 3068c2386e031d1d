package slot

import (
	"context"
	"database/sql"
)

// DBExecutor is the database access contract. Satisfied by *sql.DB, *sql.Tx
// and the dbmetrics wrapper.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
