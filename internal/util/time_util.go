package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns midnight UTC of the calendar day t falls on in UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// FormatDate renders t as an ISO calendar date (YYYY-MM-DD) in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layout, s, time.UTC)
}

// DaysBetween counts calendar days from start to end inclusive. It returns 0
// when end falls on a day before start.
func DaysBetween(start, end time.Time) int {
	s, e := StartOfDay(start), StartOfDay(end)
	if e.Before(s) {
		return 0
	}
	// calendar days are always 24h in UTC
	return int(e.Sub(s).Hours()/24) + 1
}

// EachDay calls fn for every calendar day from start to end inclusive, in
// ascending order, stopping early if fn returns false.
func EachDay(start, end time.Time, fn func(day time.Time) bool) {
	last := StartOfDay(end)
	for d := StartOfDay(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
