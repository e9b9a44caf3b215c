package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	// 2024-03-13 is a Wednesday; its week runs Mon 11th through Sun 17th.
	today := day(2024, 3, 13)

	tests := []struct {
		name        string
		recommended time.Time
		status      Status
		expected    PriorityClass
	}{
		{"pending before today", day(2024, 3, 12), StatusPending, ClassOverdue},
		{"pending long before today", day(2024, 1, 5), StatusPending, ClassOverdue},
		{"due today", day(2024, 3, 13), StatusPending, ClassToday},
		{"due today with sms sent", day(2024, 3, 13), StatusSmsSent, ClassToday},
		{"later this week", day(2024, 3, 15), StatusPending, ClassThisWeek},
		{"sunday closes the week", day(2024, 3, 17), StatusPending, ClassThisWeek},
		{"next monday", day(2024, 3, 18), StatusPending, ClassUpcoming},
		{"next month", day(2024, 4, 20), StatusPending, ClassUpcoming},
		// Past dates only rank as overdue while nothing has been done
		// about them; a contacted reminder no longer needs chasing.
		{"past but already called", day(2024, 3, 12), StatusCalled, ClassUpcoming},
		{"past but sms sent", day(2024, 3, 12), StatusSmsSent, ClassUpcoming},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.recommended, tc.status, today))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 13, 18, 45, 12, 0, time.UTC)
	recommended := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, ClassToday, Classify(recommended, StatusPending, today))
}

func TestClassifyIsStable(t *testing.T) {
	today := day(2024, 3, 13)
	recommended := day(2024, 3, 15)

	first := Classify(recommended, StatusPending, today)
	second := Classify(recommended, StatusPending, today)

	assert.Equal(t, first, second)
}

func TestWeekStartsOnMonday(t *testing.T) {
	monday := day(2024, 3, 11)

	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, monday, weekStart(monday.AddDate(0, 0, offset)))
	}

	sunday := day(2024, 3, 10)
	assert.Equal(t, day(2024, 3, 4), weekStart(sunday))
}

func TestRecommendedDate(t *testing.T) {
	lastVisit := time.Date(2024, 1, 1, 16, 30, 0, 0, time.UTC)

	got := RecommendedDate(lastVisit, 21)
	assert.Equal(t, day(2024, 1, 22), got)

	// month boundary
	got = RecommendedDate(day(2024, 1, 25), 10)
	assert.Equal(t, day(2024, 2, 4), got)
}
