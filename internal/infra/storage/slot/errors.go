package slot

import "errors"

var (
	// ErrSlotNotFound is returned when no row matches the slot id.
	ErrSlotNotFound = errors.New("storage: slot not found")

	// ErrBuildQuery is returned when the query builder fails.
	ErrBuildQuery = errors.New("storage: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("storage: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("storage: failed to scan row")
)
