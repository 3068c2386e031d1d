package slot

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

// Columns of the time_slots table as created by migrations/001_init.sql.
// Every statement this repository generates must stay within this set.
var timeSlotSchemaColumns = map[string]bool{
	"id":               true,
	"service_id":       true,
	"slot_date":        true,
	"start_time":       true,
	"available":        true,
	"base_price":       true,
	"duration_minutes": true,
	"updated_at":       true,
}

type execCall struct {
	query string
	args  []interface{}
}

type fakeDB struct {
	execs   []execCall
	execErr error
	rows    int64
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeResult{rows: f.rows}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct{ rows int64 }

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

var assignedColumnRe = regexp.MustCompile(`(\w+)\s*=`)

// assignedColumns lists every "<column> =" target in an UPDATE or WHERE clause.
func assignedColumns(query string) []string {
	var columns []string
	for _, match := range assignedColumnRe.FindAllStringSubmatch(query, -1) {
		columns = append(columns, match[1])
	}
	return columns
}

func TestSetAvailability_UpdateStaysWithinSchema(t *testing.T) {
	db := &fakeDB{rows: 1}
	repo := NewRepository(db)

	err := repo.SetAvailability(context.Background(), "lavage/2026-09-05/10:00", false)
	require.NoError(t, err)

	require.Len(t, db.execs, 1)
	got := db.execs[0]
	assert.Equal(t, "UPDATE time_slots SET available = $1, updated_at = NOW() WHERE id = $2", got.query)
	assert.Equal(t, []interface{}{false, "lavage/2026-09-05/10:00"}, got.args)

	for _, column := range assignedColumns(got.query) {
		assert.Contains(t, timeSlotSchemaColumns, column,
			"statement references a column the migration does not define")
	}
}

func TestSetAvailability_UnknownSlot(t *testing.T) {
	repo := NewRepository(&fakeDB{rows: 0})

	err := repo.SetAvailability(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSetAvailability_ExecFailure(t *testing.T) {
	repo := NewRepository(&fakeDB{execErr: errors.New("connection reset")})

	err := repo.SetAvailability(context.Background(), "lavage/2026-09-05/10:00", true)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestCreate_InsertStaysWithinSchema(t *testing.T) {
	db := &fakeDB{rows: 1}
	repo := NewRepository(db)

	slot := &domain.TimeSlot{
		ID:              "lavage/2026-09-05/10:00",
		ServiceID:       "lavage",
		Date:            time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		Available:       true,
		BasePrice:       5000,
		DurationMinutes: 30,
	}
	require.NoError(t, repo.Create(context.Background(), slot))

	require.Len(t, db.execs, 1)
	got := db.execs[0]
	require.True(t, strings.HasPrefix(got.query, "INSERT INTO time_slots ("))

	open := strings.Index(got.query, "(")
	end := strings.Index(got.query, ")")
	require.Greater(t, end, open)
	for _, column := range strings.Split(got.query[open+1:end], ",") {
		assert.Contains(t, timeSlotSchemaColumns, strings.TrimSpace(column))
	}
	assert.Len(t, got.args, len(slotColumns))
}
