package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
	minutesPerDay     = 24 * 60
)

// ErrInvalidTimeString is returned when a value is not a valid HH:MM time of day.
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString is a time of day in "HH:MM" form.
// Postgres TIME columns are scanned into it and written back as text.
type TimeString string

// NewTimeString takes the wall-clock time of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" (seconds are dropped).
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		parsed, err = time.Parse(timeLayoutSeconds, s)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return NewTimeString(parsed), nil
}

// NewTimeStringFromMinutes converts minutes from midnight, wrapping past 24:00.
func NewTimeStringFromMinutes(minutes int) TimeString {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes from midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
