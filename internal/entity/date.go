package entity

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used everywhere a date crosses
// a boundary (JSON, XLSX, SQL text columns).
const DateFormat = "2006-01-02"

// Date is a calendar date; it serializes without a time-of-day component.
type Date struct {
	time.Time
}

// NewDate builds a Date pinned to UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(DateFormat))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
