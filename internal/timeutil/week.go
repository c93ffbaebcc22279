// Package timeutil provides the calendar math shared by the views: ISO date
// formatting and Monday-start week arithmetic.
package timeutil

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DaysPerWeek is the fixed divisor for weekly averages.
const DaysPerWeek = 7

// FormatDate renders a time as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current local date in wire format.
func Today() string {
	return FormatDate(time.Now())
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday that begins the week containing t, shifted
// back by offset weeks (offset 0 is the current week).
func WeekStart(t time.Time, offset int) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = DaysPerWeek // Sunday belongs to the week that started the previous Monday
	}
	return Midnight(t).AddDate(0, 0, -(wd-1)-DaysPerWeek*offset)
}

// WeekBounds returns the Monday and Sunday of the week containing t,
// shifted back by offset weeks.
func WeekBounds(t time.Time, offset int) (time.Time, time.Time) {
	start := WeekStart(t, offset)
	return start, start.AddDate(0, 0, DaysPerWeek-1)
}

// WeekDays enumerates the seven calendar days starting at start.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameMonth reports whether two times fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
