package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/calendar"
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/internal/registry"
	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seed(t *testing.T, cal *calendar.Calendar, serviceID, start string) string {
	t.Helper()
	date, _ := time.Parse(domain.DateFormat, "2026-09-05")
	startTime, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)
	require.NoError(t, cal.Put(domain.TimeSlot{
		ServiceID:       serviceID,
		Date:            date,
		StartTime:       startTime,
		Available:       true,
		BasePrice:       5000,
		DurationMinutes: 30,
	}))
	return domain.SlotID(serviceID, date, startTime)
}

func TestExecute_ReturnsSortedAvailability(t *testing.T) {
	catalog, err := registry.New(nil)
	require.NoError(t, err)
	cal := calendar.New()
	uc := NewUseCase(cal, catalog, nopLogger{})

	seed(t, cal, "lavage", "11:00")
	seed(t, cal, "lavage", "09:30")
	claimed := seed(t, cal, "lavage", "10:00")
	_, err = cal.Reserve(claimed)
	require.NoError(t, err)

	date, _ := time.Parse(domain.DateFormat, "2026-09-05")
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "lavage", Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:30", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[1].StartTime.String())
}

func TestExecute_EmptyDayIsNotAnError(t *testing.T) {
	catalog, err := registry.New(nil)
	require.NoError(t, err)
	uc := NewUseCase(calendar.New(), catalog, nopLogger{})

	date, _ := time.Parse(domain.DateFormat, "2026-09-05")
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "lavage", Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_GatesServices(t *testing.T) {
	catalog, err := registry.New(nil)
	require.NoError(t, err)
	uc := NewUseCase(calendar.New(), catalog, nopLogger{})

	date, _ := time.Parse(domain.DateFormat, "2026-09-05")

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "pressing", Date: date})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "boutique", Date: date})
	assert.ErrorIs(t, err, ErrBookingNotSupported)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "", Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
