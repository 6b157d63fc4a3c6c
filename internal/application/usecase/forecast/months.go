// Package forecast contains the forecast engine use cases.
package forecast

import "time"

// monthStart truncates a date to the first day of its month in UTC.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthEnd returns the last day of the month containing t.
func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}

// addMonths shifts a month-start date by n calendar months.
func addMonths(month time.Time, n int) time.Time {
	return monthStart(month).AddDate(0, n, 0)
}

// monthsBetween returns the number of calendar months from one month to
// another, negative when target precedes anchor.
func monthsBetween(anchor, target time.Time) int {
	return (target.Year()-anchor.Year())*12 + int(target.Month()) - int(anchor.Month())
}
