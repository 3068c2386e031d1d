package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	reservationRepo "github.com/vitrineapp/VA-BookingService/internal/infra/storage/reservation"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
	"github.com/vitrineapp/VA-BookingService/pkg/ptr"
)

// fakeRepo keeps reservations in a map and mimics the storage sentinels.
type fakeRepo struct {
	reservations map[string]*domain.Reservation
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{reservations: make(map[string]*domain.Reservation)}
	for _, r := range reservations {
		copy := *r
		repo.reservations[r.ID] = &copy
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copy := *r
	return &copy, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.UserID != userID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		copy := *r
		out = append(out, &copy)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, startedAt, endedAt *time.Time) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	if startedAt != nil {
		r.ActualStartTime = startedAt
	}
	if endedAt != nil {
		r.ActualEndTime = endedAt
	}
	return nil
}

func (f *fakeRepo) SetCancelled(_ context.Context, id string, reason *string, cancelledAt time.Time) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = domain.StatusCancelled
	r.CancellationReason = reason
	r.CancelledAt = &cancelledAt
	return nil
}

type fakeCalendar struct {
	released []string
}

func (f *fakeCalendar) Release(slotID string) error {
	f.released = append(f.released, slotID)
	return nil
}

type fakeSlotStore struct {
	flips map[string]bool
}

func (f *fakeSlotStore) SetAvailability(_ context.Context, slotID string, available bool) error {
	if f.flips == nil {
		f.flips = make(map[string]bool)
	}
	f.flips[slotID] = available
	return nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    "user-1",
		ServiceID: "lavage",
		SlotID:    "lavage/2026-09-05/10:00",
		Status:    status,
		Detail:    domain.NoDetail(),
		Pricing:   domain.PricingBreakdown{Base: 5000, Multiplier: 1.0, Total: 5000},
	}
}

func newTestService(repo *fakeRepo, cal *fakeCalendar, store *fakeSlotStore) *Service {
	now := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	return NewService(repo, cal, store, nopLogger{}).WithTimeProvider(&fixedTime{t: now})
}

func TestLifecycle_HappyPath(t *testing.T) {
	repo := newFakeRepo(testReservation("r1", domain.StatusPending))
	svc := newTestService(repo, &fakeCalendar{}, &fakeSlotStore{})
	ctx := context.Background()

	confirmed, err := svc.Confirm(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	started, err := svc.Start(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", started.Status)
	require.NotNil(t, started.ActualStartTime)

	completed, err := svc.Complete(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.ActualEndTime)
}

func TestTransitions_RejectIllegalSteps(t *testing.T) {
	tests := []struct {
		name string
		from domain.ReservationStatus
		call func(svc *Service, ctx context.Context) error
	}{
		{"start from pending", domain.StatusPending, func(svc *Service, ctx context.Context) error {
			_, err := svc.Start(ctx, "r1")
			return err
		}},
		{"complete from pending", domain.StatusPending, func(svc *Service, ctx context.Context) error {
			_, err := svc.Complete(ctx, "r1")
			return err
		}},
		{"complete from confirmed", domain.StatusConfirmed, func(svc *Service, ctx context.Context) error {
			_, err := svc.Complete(ctx, "r1")
			return err
		}},
		{"confirm from completed", domain.StatusCompleted, func(svc *Service, ctx context.Context) error {
			_, err := svc.Confirm(ctx, "r1")
			return err
		}},
		{"confirm from cancelled", domain.StatusCancelled, func(svc *Service, ctx context.Context) error {
			_, err := svc.Confirm(ctx, "r1")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testReservation("r1", tt.from))
			svc := newTestService(repo, &fakeCalendar{}, &fakeSlotStore{})

			err := tt.call(svc, context.Background())
			assert.ErrorIs(t, err, ErrInvalidTransition)

			// State must be untouched after a rejected transition.
			stored, getErr := repo.GetByID(context.Background(), "r1")
			require.NoError(t, getErr)
			assert.Equal(t, tt.from, stored.Status)
		})
	}
}

func TestCancel_FromEveryActiveState(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeRepo(testReservation("r1", status))
			cal := &fakeCalendar{}
			store := &fakeSlotStore{}
			svc := newTestService(repo, cal, store)

			result, err := svc.Cancel(context.Background(), "r1", &models.CancelReservationRequest{
				UserID:             "user-1",
				CancellationReason: "changement de programme",
			})
			require.NoError(t, err)

			assert.Equal(t, "cancelled", result.Status)
			require.NotNil(t, result.CancellationReason)
			assert.Equal(t, "changement de programme", *result.CancellationReason)
			assert.NotNil(t, result.CancelledAt)

			// The slot goes back to the pool and the mirror is told.
			assert.Equal(t, []string{"lavage/2026-09-05/10:00"}, cal.released)
			assert.Equal(t, map[string]bool{"lavage/2026-09-05/10:00": true}, store.flips)
		})
	}
}

func TestCancel_RejectsTerminalStates(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeRepo(testReservation("r1", status))
			cal := &fakeCalendar{}
			svc := newTestService(repo, cal, &fakeSlotStore{})

			_, err := svc.Cancel(context.Background(), "r1", &models.CancelReservationRequest{UserID: "user-1"})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, cal.released)
		})
	}
}

func TestGetByID_TranslatesNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeCalendar{}, &fakeSlotStore{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_FiltersByStatus(t *testing.T) {
	pending := testReservation("r1", domain.StatusPending)
	completed := testReservation("r2", domain.StatusCompleted)
	other := testReservation("r3", domain.StatusPending)
	other.UserID = "user-2"

	repo := newFakeRepo(pending, completed, other)
	svc := newTestService(repo, &fakeCalendar{}, &fakeSlotStore{})

	all, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, all.Reservations, 2)

	onlyPending, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, onlyPending.Reservations, 1)
	assert.Equal(t, "r1", onlyPending.Reservations[0].ID)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("paused"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
