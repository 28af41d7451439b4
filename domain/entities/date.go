package entities

import (
	"fmt"
	"time"
)

// Date is a broken-down calendar value as exchanged with the host.
// Month is 1-based. No time zone is attached; callers pick one in Time.
type Date struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	Day         int `json:"day"`
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Millisecond int `json:"millisecond"`
}

// DateFromTime breaks t down in its own location.
func DateFromTime(t time.Time) Date {
	return Date{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Time assembles the calendar value in loc. A nil loc means UTC.
// Out-of-range fields are normalized the way time.Date does.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second,
		d.Millisecond*int(time.Millisecond), loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond)
}
