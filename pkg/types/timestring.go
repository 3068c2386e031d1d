package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wall-clock format used across the service: "HH:MM".
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value does not parse as "HH:MM"
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString is a wall-clock time of day ("10:30") without a date or zone.
// Slots are keyed by it and duration arithmetic is done on it, so it must
// stay exact: no locale parsing, no implicit zone conversion.
type TimeString string

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates a "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps within a single day, which is fine for slot arithmetic:
// working hours never cross midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so the type can be written directly.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as strings
// or byte slices depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(trimSeconds(v))
	case []byte:
		*t = TimeString(trimSeconds(string(v)))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return nil
}

// trimSeconds normalizes "HH:MM:SS" to "HH:MM".
func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
