package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/pkg/dbmetrics"
	"github.com/vitrineapp/VA-BookingService/pkg/psqlbuilder"
)

// Repository persists the slot plans. The in-memory calendar is the
// authority for availability races; this repository is the durable mirror
// it is seeded from at boot and written back to on claim/release.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var slotColumns = []string{
	"id",
	"service_id",
	"slot_date",
	"start_time",
	"available",
	"base_price",
	"duration_minutes",
}

// Create inserts one slot.
func (r *Repository) Create(ctx context.Context, s *domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns(slotColumns...).
		Values(
			s.ID,
			s.ServiceID,
			s.Date,
			s.StartTime,
			s.Available,
			s.BasePrice,
			s.DurationMinutes,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// LoadAll returns every stored slot, used to seed the calendar at boot.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.TimeSlot, error) {
	return r.load(ctx, nil)
}

// LoadByServiceAndDate returns the slot plan of one service on one date.
func (r *Repository) LoadByServiceAndDate(ctx context.Context, serviceID string, date time.Time) ([]domain.TimeSlot, error) {
	return r.load(ctx, squirrel.Eq{"service_id": serviceID, "slot_date": date})
}

func (r *Repository) load(ctx context.Context, where interface{}) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		OrderBy("service_id, slot_date, start_time")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: load - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var (
			s        domain.TimeSlot
			slotDate time.Time
		)
		if err := rows.Scan(
			&s.ID,
			&s.ServiceID,
			&slotDate,
			&s.StartTime,
			&s.Available,
			&s.BasePrice,
			&s.DurationMinutes,
		); err != nil {
			return nil, fmt.Errorf("%w: load - scan slot: %v", ErrScanRow, err)
		}
		s.Date = slotDate.UTC()
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load - iterate rows: %v", ErrExecQuery, err)
	}
	return slots, nil
}

// SetAvailability mirrors an in-memory claim or release to the store.
func (r *Repository) SetAvailability(ctx context.Context, slotID string, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrSlotNotFound
	}
	return nil
}
