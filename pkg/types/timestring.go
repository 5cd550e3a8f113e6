package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is the unit of all slot arithmetic: comparisons and additions work on
// minutes since midnight, so interval checks never touch time.Time.
//
// The special value "24:00" is allowed as an exclusive end of day.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseMinutes(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hours: %v", s, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minutes: %v", s, err)
	}

	if hours < 0 || hours > 24 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	if hours == 24 && mins != 0 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}

	return hours*60 + mins, nil
}

func formatMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// MinutesFromMidnight returns the time as minutes since 00:00.
// The value must have been constructed through one of the New* helpers;
// a malformed value is a programming error and panics.
func (t TimeString) MinutesFromMidnight() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		panic(fmt.Sprintf("types: malformed TimeString %q", string(t)))
	}
	return m
}

// AddMinutes returns the time shifted forward by m minutes.
// Returns an error if the result would pass the end of the day ("24:00").
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}

	total := base + m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("time %s%+d minutes is outside the day", t, m)
	}

	return formatMinutes(total), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesFromMidnight() > other.MinutesFromMidnight()
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so TimeString can be written to TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if _, err := parseMinutes(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time
// through lib/pq, text columns as string or []byte.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		ts, err := NewTimeStringFromString(trimSeconds(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(trimSeconds(string(v)))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// trimSeconds turns "10:00:00" into "10:00".
func trimSeconds(s string) string {
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		return s[:5]
	}
	return s
}
