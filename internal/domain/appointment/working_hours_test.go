package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// 2024-03-11 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 3, 11, hour, minute, 0, 0, time.UTC)
}

func mondaySchedule() *models.WorkSchedule {
	return &models.WorkSchedule{
		Weekday:   1,
		Active:    true,
		StartTime: "09:00",
		EndTime:   "18:00",
	}
}

func TestIsWithinWorkSchedule(t *testing.T) {
	tests := []struct {
		name     string
		ws       *models.WorkSchedule
		start    time.Time
		end      time.Time
		expected bool
	}{
		{
			name:     "inside the day",
			ws:       mondaySchedule(),
			start:    monday(10, 0),
			end:      monday(11, 0),
			expected: true,
		},
		{
			name:     "starts at opening",
			ws:       mondaySchedule(),
			start:    monday(9, 0),
			end:      monday(10, 0),
			expected: true,
		},
		{
			name:     "ends exactly at closing",
			ws:       mondaySchedule(),
			start:    monday(17, 0),
			end:      monday(18, 0),
			expected: true,
		},
		{
			name:     "runs past closing",
			ws:       mondaySchedule(),
			start:    monday(17, 30),
			end:      monday(18, 30),
			expected: false,
		},
		{
			name:     "starts before opening",
			ws:       mondaySchedule(),
			start:    monday(8, 30),
			end:      monday(9, 30),
			expected: false,
		},
		{
			name:     "wrong weekday",
			ws:       &models.WorkSchedule{Weekday: 2, Active: true, StartTime: "09:00", EndTime: "18:00"},
			start:    monday(10, 0),
			end:      monday(11, 0),
			expected: false,
		},
		{
			name:     "inactive day",
			ws:       &models.WorkSchedule{Weekday: 1, Active: false, StartTime: "09:00", EndTime: "18:00"},
			start:    monday(10, 0),
			end:      monday(11, 0),
			expected: false,
		},
		{
			name:     "no schedule row",
			ws:       nil,
			start:    monday(10, 0),
			end:      monday(11, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsWithinWorkSchedule(tc.ws, tc.start, tc.end))
		})
	}
}

func TestIsWithinWorkScheduleBreakWindow(t *testing.T) {
	ws := mondaySchedule()
	ws.BreakStart = "13:00"
	ws.BreakEnd = "14:00"

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"overlaps break start", monday(12, 30), monday(13, 30), false},
		{"inside break", monday(13, 0), monday(14, 0), false},
		{"overlaps break end", monday(13, 30), monday(14, 30), false},
		{"ends when break starts", monday(12, 0), monday(13, 0), true},
		{"starts when break ends", monday(14, 0), monday(15, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsWithinWorkSchedule(ws, tc.start, tc.end))
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		ws       models.WorkSchedule
		expected bool
	}{
		{"plain day", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00"}, true},
		{"inactive skips validation", models.WorkSchedule{Weekday: 1, Active: false}, true},
		{"start after end", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "18:00", EndTime: "09:00"}, false},
		{"zero-length day", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "09:00"}, false},
		{"garbage time", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "morning", EndTime: "18:00"}, false},
		{"weekday out of range", models.WorkSchedule{Weekday: 7, Active: true, StartTime: "09:00", EndTime: "18:00"}, false},
		{"break inside day", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "13:00", BreakEnd: "14:00"}, true},
		{"break outside day", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "08:00", BreakEnd: "10:00"}, false},
		{"inverted break", models.WorkSchedule{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "14:00", BreakEnd: "13:00"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ws := tc.ws
			assert.Equal(t, tc.expected, ValidateSchedule(&ws))
		})
	}
}

func TestParseDayTime(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	assert.NoError(t, err)

	ref := time.Date(2024, 3, 11, 0, 0, 0, 0, kyiv)
	got := ParseDayTime("14:30", ref)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 11, got.Day())
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, kyiv, got.Location())
}
