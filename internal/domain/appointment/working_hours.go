package appointment

import (
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// ParseDayTime anchors an "15:04" string on the day of ref, in ref's location.
func ParseDayTime(hm string, ref time.Time) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}

// IsWithinWorkSchedule validates that [start, end) fits inside the staff
// member's working hours for that weekday, outside the break window.
func IsWithinWorkSchedule(ws *models.WorkSchedule, start, end time.Time) bool {
	if ws == nil || !ws.Active || ws.StartTime == "" || ws.EndTime == "" {
		return false
	}

	if int(start.Weekday()) != ws.Weekday {
		return false
	}

	workStart := ParseDayTime(ws.StartTime, start)
	workEnd := ParseDayTime(ws.EndTime, start)

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	if ws.BreakStart != "" && ws.BreakEnd != "" {
		breakStart := ParseDayTime(ws.BreakStart, start)
		breakEnd := ParseDayTime(ws.BreakEnd, start)

		if Overlaps(start, end, breakStart, breakEnd) {
			return false
		}
	}

	return true
}

// ValidateSchedule checks a weekday row at write time: start < end and,
// when a break is configured, the break sits inside the day.
func ValidateSchedule(ws *models.WorkSchedule) bool {
	if !ws.Active {
		return true
	}
	if ws.Weekday < 0 || ws.Weekday > 6 {
		return false
	}

	start, err1 := time.Parse("15:04", ws.StartTime)
	end, err2 := time.Parse("15:04", ws.EndTime)
	if err1 != nil || err2 != nil || !start.Before(end) {
		return false
	}

	if ws.BreakStart == "" && ws.BreakEnd == "" {
		return true
	}

	bs, err1 := time.Parse("15:04", ws.BreakStart)
	be, err2 := time.Parse("15:04", ws.BreakEnd)
	if err1 != nil || err2 != nil || !bs.Before(be) {
		return false
	}

	return !bs.Before(start) && !end.Before(be)
}
