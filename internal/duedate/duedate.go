// Package duedate classifies task due dates against the current moment.
//
// Comparisons work on calendar days, not elapsed time: a task due at 08:00 is
// still "due today" at 15:00 the same day.
package duedate

import (
	"fmt"
	"math"
	"time"
)

// Severity buckets a due date for display styling.
type Severity string

const (
	SeverityOverdue Severity = "overdue"
	SeveritySoon    Severity = "soon"
	SeverityNormal  Severity = "normal"
)

// StartOfDay returns a copy of t truncated to local midnight. The input is
// never modified.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DiffCalendarDays returns the number of calendar days between now and due:
// negative when the due day has passed, zero when due is the same calendar day
// as now, one for tomorrow. Both instants are truncated to local midnight
// before differencing, and the day quotient is rounded so DST-shifted days
// still count as whole days.
func DiffCalendarDays(due, now time.Time) int {
	diff := StartOfDay(due).Sub(StartOfDay(now))
	return int(math.Round(diff.Hours() / 24))
}

// Label renders the human label for a due date: "Overdue", "Due today",
// "Due tomorrow", or a short month-day formatted from the original instant.
func Label(due, now time.Time) string {
	switch d := DiffCalendarDays(due, now); {
	case d < 0:
		return "Overdue"
	case d == 0:
		return "Due today"
	case d == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("%s %d", due.Format("Jan"), due.Day())
	}
}

// Classify returns the severity bucket for a due date: overdue for past days,
// soon for today and tomorrow, normal beyond that.
func Classify(due, now time.Time) Severity {
	switch d := DiffCalendarDays(due, now); {
	case d < 0:
		return SeverityOverdue
	case d <= 1:
		return SeveritySoon
	default:
		return SeverityNormal
	}
}
