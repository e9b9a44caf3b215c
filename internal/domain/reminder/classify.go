package reminder

import "time"

// PriorityClass is a read-time urgency label. It is a pure function of
// (recommended_date, status, today) and is never persisted: "today"
// advances, so every query recomputes it.
type PriorityClass string

const (
	ClassOverdue  PriorityClass = "overdue"
	ClassToday    PriorityClass = "today"
	ClassThisWeek PriorityClass = "this_week"
	ClassUpcoming PriorityClass = "upcoming"
)

func Classify(recommendedDate time.Time, status Status, today time.Time) PriorityClass {
	due := startOfDay(recommendedDate)
	now := startOfDay(today)

	switch {
	case due.Before(now) && status == StatusPending:
		return ClassOverdue
	case due.Equal(now):
		return ClassToday
	case due.Before(now):
		// already contacted; no longer needs chasing
		return ClassUpcoming
	case inSameWeek(due, now):
		return ClassThisWeek
	default:
		return ClassUpcoming
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Weeks start on Monday.
func weekStart(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func inSameWeek(a, b time.Time) bool {
	return weekStart(a).Equal(weekStart(b))
}
