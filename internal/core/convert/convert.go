// Package convert holds the field conversions shared by all entity mappers.
// Every function is total for well-typed input; only the parsers for textual
// timestamps and dates can fail, and they fail with a CONVERSION_ERROR.
package convert

import (
	"strings"
	"time"

	"bogenliga/internal/core/apperror"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// UTC normalises a timestamp to UTC. The zero time stays zero.
func UTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// UTCPtr normalises an optional timestamp to UTC.
func UTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := UTC(*t)
	return &u
}

// ParseTimestamp parses an RFC 3339 timestamp and returns it in UTC.
func ParseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperror.NewConversion(field, value, err)
	}
	return t.UTC(), nil
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, apperror.NewConversion(field, value, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// NullableID maps an optional foreign key to its pointer form. Ids <= 0 mean "none".
func NullableID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// IDOrZero is the inverse of NullableID.
func IDOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// UpperEnum normalises a textual enum value.
func UpperEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
