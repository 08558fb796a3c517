package service

import (
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
)

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PeriodWindow returns the [start, end) window of the recurrence period
// containing now. Days start at UTC midnight, weeks on ISO Monday.
func PeriodWindow(recurrence entity.Recurrence, now time.Time) (time.Time, time.Time, error) {
	day := DateOf(now)
	switch recurrence {
	case entity.RecurrenceDaily:
		return day, day.AddDate(0, 0, 1), nil
	case entity.RecurrenceWeekly:
		sinceMonday := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -sinceMonday)
		return start, start.AddDate(0, 0, 7), nil
	}
	return time.Time{}, time.Time{}, errorvalues.ErrUnknownRecurrence
}

// daysBetween counts calendar days from a to b in UTC.
func daysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
