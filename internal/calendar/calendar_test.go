package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

func testSlot(t *testing.T, serviceID, day, start string, price domain.Money) domain.TimeSlot {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, day)
	require.NoError(t, err)
	startTime, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)
	return domain.TimeSlot{
		ServiceID:       serviceID,
		Date:            date,
		StartTime:       startTime,
		Available:       true,
		BasePrice:       price,
		DurationMinutes: 30,
	}
}

func TestPut_DefaultsCanonicalID(t *testing.T) {
	cal := New()
	slot := testSlot(t, "lavage", "2026-09-05", "10:00", 5000)

	require.NoError(t, cal.Put(slot))

	got, err := cal.Get("lavage/2026-09-05/10:00")
	require.NoError(t, err)
	assert.Equal(t, "lavage/2026-09-05/10:00", got.ID)
	assert.True(t, got.Available)
}

func TestPut_RejectsDuplicateAndInvalid(t *testing.T) {
	cal := New()
	slot := testSlot(t, "lavage", "2026-09-05", "10:00", 5000)

	require.NoError(t, cal.Put(slot))
	assert.ErrorIs(t, cal.Put(slot), ErrDuplicateSlot)

	bad := testSlot(t, "lavage", "2026-09-05", "11:00", 5000)
	bad.DurationMinutes = 0
	assert.ErrorIs(t, cal.Put(bad), ErrInvalidSlot)
}

func TestReserve_ExactlyOneWinnerUnderContention(t *testing.T) {
	cal := New()
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))
	slotID := "lavage/2026-09-05/10:00"

	const goroutines = 64
	var wg sync.WaitGroup
	var winners, losers sync.Map
	start := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			if _, err := cal.Reserve(slotID); err == nil {
				winners.Store(n, struct{}{})
			} else {
				losers.Store(n, err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	winnerCount := 0
	winners.Range(func(_, _ interface{}) bool { winnerCount++; return true })
	assert.Equal(t, 1, winnerCount)

	loserCount := 0
	losers.Range(func(_, v interface{}) bool {
		loserCount++
		assert.ErrorIs(t, v.(error), ErrSlotUnavailable)
		return true
	})
	assert.Equal(t, goroutines-1, loserCount)
}

func TestReserveRelease_RoundTripPreservesIdentity(t *testing.T) {
	cal := New()
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))
	slotID := "lavage/2026-09-05/10:00"

	claimed, err := cal.Reserve(slotID)
	require.NoError(t, err)
	assert.False(t, claimed.Available)

	_, err = cal.Reserve(slotID)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	require.NoError(t, cal.Release(slotID))

	restored, err := cal.Get(slotID)
	require.NoError(t, err)
	assert.True(t, restored.Available)
	assert.Equal(t, claimed.BasePrice, restored.BasePrice)
	assert.Equal(t, claimed.DurationMinutes, restored.DurationMinutes)
	assert.Equal(t, claimed.StartTime, restored.StartTime)
}

func TestRelease_IsIdempotentButRejectsUnknown(t *testing.T) {
	cal := New()
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))
	slotID := "lavage/2026-09-05/10:00"

	// Releasing an already available slot is a no-op.
	require.NoError(t, cal.Release(slotID))
	require.NoError(t, cal.Release(slotID))

	gen, err := cal.Generation(slotID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), gen)

	assert.ErrorIs(t, cal.Release("lavage/2026-09-05/23:00"), ErrUnknownSlot)
}

func TestReserve_UnknownIDIsNotContention(t *testing.T) {
	cal := New()
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))

	_, err := cal.Reserve("lavage/2026-09-05/23:00")
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.NotErrorIs(t, err, ErrSlotUnavailable)
}

func TestListAvailable_SortedSnapshotExcludesClaimed(t *testing.T) {
	cal := New()
	day, _ := time.Parse(domain.DateFormat, "2026-09-05")

	// Inserted out of order on purpose.
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "11:00", 5000)))
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "09:30", 5000)))
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))
	require.NoError(t, cal.Put(testSlot(t, "restaurant", "2026-09-05", "09:00", 0)))

	_, err := cal.Reserve("lavage/2026-09-05/10:00")
	require.NoError(t, err)

	slots := cal.ListAvailable("lavage", day)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[0].StartTime.String())
	assert.Equal(t, "11:00", slots[1].StartTime.String())

	assert.Empty(t, cal.ListAvailable("lavage", day.AddDate(0, 0, 1)))
}

func TestGeneration_CountsFlips(t *testing.T) {
	cal := New()
	require.NoError(t, cal.Put(testSlot(t, "lavage", "2026-09-05", "10:00", 5000)))
	slotID := "lavage/2026-09-05/10:00"

	_, err := cal.Reserve(slotID)
	require.NoError(t, err)
	require.NoError(t, cal.Release(slotID))
	_, err = cal.Reserve(slotID)
	require.NoError(t, err)

	gen, err := cal.Generation(slotID)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), gen)
}
