package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/pkg/dbmetrics"
	"github.com/vitrineapp/VA-BookingService/pkg/psqlbuilder"
)

// Repository persists reservations. The detail payload is flattened into
// nullable columns selected by detail_kind; add-ons go into a text array.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var reservationColumns = []string{
	"id",
	"user_id",
	"service_id",
	"slot_id",
	"scheduled_at",
	"status",
	"detail_kind",
	"vehicle_brand",
	"vehicle_model",
	"vehicle_type",
	"vehicle_size",
	"vehicle_color",
	"vehicle_license_plate",
	"table_number",
	"table_location",
	"table_capacity",
	"selected_addons",
	"special_requests",
	"price_base",
	"price_addons",
	"price_multiplier",
	"price_total",
	"estimated_duration_minutes",
	"actual_start_time",
	"actual_end_time",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create inserts a reservation. If the context carries an active
// transaction it is used, otherwise the call runs standalone.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		vehicleBrand, vehicleModel, vehicleType, vehicleSize, vehicleColor, vehiclePlate *string
		tableNumber, tableCapacity                                                      *int
		tableLocation                                                                   *string
	)
	switch res.Detail.Kind {
	case domain.DetailVehicle:
		v := res.Detail.Vehicle
		vehicleBrand, vehicleModel, vehicleType = &v.Brand, &v.Model, &v.Type
		vehicleSize, vehicleColor, vehiclePlate = &v.Size, &v.Color, &v.LicensePlate
	case domain.DetailTable:
		t := res.Detail.Table
		tableNumber = t.TableNumber
		tableLocation = &t.Location
		tableCapacity = &t.Capacity
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"user_id",
			"service_id",
			"slot_id",
			"scheduled_at",
			"status",
			"detail_kind",
			"vehicle_brand",
			"vehicle_model",
			"vehicle_type",
			"vehicle_size",
			"vehicle_color",
			"vehicle_license_plate",
			"table_number",
			"table_location",
			"table_capacity",
			"selected_addons",
			"special_requests",
			"price_base",
			"price_addons",
			"price_multiplier",
			"price_total",
			"estimated_duration_minutes",
		).
		Values(
			res.ID,
			res.UserID,
			res.ServiceID,
			res.SlotID,
			res.ScheduledAt,
			res.Status,
			res.Detail.Kind,
			vehicleBrand,
			vehicleModel,
			vehicleType,
			vehicleSize,
			vehicleColor,
			vehiclePlate,
			tableNumber,
			tableLocation,
			tableCapacity,
			pq.Array(res.SelectedAddons),
			res.SpecialRequests,
			res.Pricing.Base,
			res.Pricing.Addons,
			res.Pricing.Multiplier,
			res.Pricing.Total,
			res.EstimatedDurationMinutes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// GetByID fetches one reservation.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetByUserID lists a user's reservations, newest first, optionally
// filtered by status.
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("scheduled_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - iterate rows: %v", ErrExecQuery, err)
	}
	return reservations, nil
}

// UpdateStatus advances the lifecycle column and, when provided, records
// the actual start/end timestamps.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, startedAt, endedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if startedAt != nil {
		updateBuilder = updateBuilder.Set("actual_start_time", *startedAt)
	}
	if endedAt != nil {
		updateBuilder = updateBuilder.Set("actual_end_time", *endedAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// SetCancelled marks a reservation cancelled with the caller's reason.
func (r *Repository) SetCancelled(ctx context.Context, id string, reason *string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCancelled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCancelled - execute update: %v", ErrExecQuery, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                                                                             domain.Reservation
		detailKind                                                                      string
		vehicleBrand, vehicleModel, vehicleType, vehicleSize, vehicleColor, vehiclePlate sql.NullString
		tableNumber, tableCapacity                                                      sql.NullInt64
		tableLocation                                                                   sql.NullString
		addons                                                                          pq.StringArray
		createdAt, updatedAt                                                            sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.ServiceID,
		&res.SlotID,
		&res.ScheduledAt,
		&res.Status,
		&detailKind,
		&vehicleBrand,
		&vehicleModel,
		&vehicleType,
		&vehicleSize,
		&vehicleColor,
		&vehiclePlate,
		&tableNumber,
		&tableLocation,
		&tableCapacity,
		&addons,
		&res.SpecialRequests,
		&res.Pricing.Base,
		&res.Pricing.Addons,
		&res.Pricing.Multiplier,
		&res.Pricing.Total,
		&res.EstimatedDurationMinutes,
		&res.ActualStartTime,
		&res.ActualEndTime,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.SelectedAddons = []string(addons)
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	switch domain.DetailKind(detailKind) {
	case domain.DetailVehicle:
		res.Detail = domain.VehicleDetail(domain.VehicleDetails{
			Brand:        vehicleBrand.String,
			Model:        vehicleModel.String,
			Type:         vehicleType.String,
			Size:         vehicleSize.String,
			Color:        vehicleColor.String,
			LicensePlate: vehiclePlate.String,
		})
	case domain.DetailTable:
		prefs := domain.TablePreferences{
			Location: tableLocation.String,
			Capacity: int(tableCapacity.Int64),
		}
		if tableNumber.Valid {
			n := int(tableNumber.Int64)
			prefs.TableNumber = &n
		}
		res.Detail = domain.TableDetail(prefs)
	default:
		res.Detail = domain.NoDetail()
	}

	return &res, nil
}
