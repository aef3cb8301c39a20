package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time component. The API emits plain
// ISO dates; some endpoints historically appended a midnight time part,
// so decoding accepts both.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time, dropping the time-of-day component.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date in wire format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date in wire format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON decodes a plain date, tolerating a trailing time part.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
