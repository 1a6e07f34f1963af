package core

import "time"

// DefaultWeekStart is the weekday a budget week begins on unless
// configured otherwise.
const DefaultWeekStart = time.Sunday

// CurrentWeekStart returns the most recent occurrence of weekStart on or
// before today. The modular difference between weekday indexes handles
// every weekday combination without special cases.
func CurrentWeekStart(today Date, weekStart time.Weekday) Date {
	delta := (int(today.Weekday()) - int(weekStart) + 7) % 7
	return today.AddDays(-delta)
}

// WeekEnd returns the last day of the 7-day week beginning at weekStart.
func WeekEnd(weekStart Date) Date { return weekStart.AddDays(6) }

// InWeek reports whether d falls inside the 7-day week beginning at
// weekStart, both bounds inclusive.
func InWeek(d, weekStart Date) bool {
	return !d.Before(weekStart) && !d.After(WeekEnd(weekStart))
}
