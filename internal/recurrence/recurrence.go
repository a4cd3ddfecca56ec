// Package recurrence computes the next fire time for recurring notifications.
package recurrence

import (
	"time"

	"github.com/pushworks/push-scheduler/internal/model"
)

// Next returns the fire time following prev under rule.
//
// Frequencies advance by calendar units, so a daily rule keeps firing at the
// same wall-clock time across DST shifts instead of exactly 24h later. An
// unknown frequency returns prev unchanged. When the rule carries a
// TimeOfDay, the result's hour and minute are overridden and seconds are
// zeroed, which gives "every day at 09:00" semantics instead of "24h after
// the last fire".
func Next(prev time.Time, rule model.RecurrenceRule) time.Time {
	var next time.Time

	switch rule.Frequency {
	case model.FrequencyDaily:
		next = prev.AddDate(0, 0, 1)
	case model.FrequencyWeekly:
		next = prev.AddDate(0, 0, 7)
	case model.FrequencyMonthly:
		// Day-of-month overflow follows Go's native rollover, e.g.
		// Jan 31 + 1 month lands on Mar 2 or Mar 3.
		next = prev.AddDate(0, 1, 0)
	default:
		return prev
	}

	if hour, minute, ok := parseTimeOfDay(rule.TimeOfDay); ok {
		next = time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, next.Location())
	}

	return next
}

func parseTimeOfDay(s string) (hour, minute int, ok bool) {
	if s == "" {
		return 0, 0, false
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}

	return t.Hour(), t.Minute(), true
}
