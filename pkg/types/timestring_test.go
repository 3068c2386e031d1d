package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"10:30", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"10:60", true},
		{"10:30:00", true},
		{"", true},
		{"midi", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestMinutesAndAddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	end, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "11:15", end.String())

	wrapped, err := TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "00:15", wrapped.String())
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan_NormalizesDriverValues(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, "10:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 5, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, "14:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue_RejectsInvalid(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
