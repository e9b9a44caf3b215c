package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apdomain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	remdomain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// ======================================================
// TODAY
// ======================================================
// Today aggregates the salon's live operational snapshot: today's
// bookings broken down by status, the revenue already collected, and
// the repeat-visit reminders due for contact.
func (h *DashboardHandler) Today(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	loc := locationFromSalon(&salon)
	dayStart := timezone.StartOfDay(nowInSalon(&salon))
	dayEnd := dayStart.AddDate(0, 0, 1)

	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("salon_id = ?", salonID).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "could not load today's bookings")
		return
	}

	byStatus := map[string]int64{}
	var total int64
	for _, r := range statusRows {
		byStatus[r.Status] = r.Count
		total += r.Count
	}

	var revenue float64
	if err := h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(final_price), 0)").
		Where("salon_id = ?", salonID).
		Where("status = ?", string(apdomain.StatusCompleted)).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "could not compute today's revenue")
		return
	}

	var dueReminders int64
	if err := h.db.Model(&models.RepeatVisitReminder{}).
		Where("salon_id = ?", salonID).
		Where("status = ?", string(remdomain.StatusPending)).
		Where("recommended_date < ?", dayEnd).
		Count(&dueReminders).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "could not count due reminders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":                   dayStart.In(loc).Format("2006-01-02"),
		"appointments_total":     total,
		"appointments_by_status": byStatus,
		"revenue":                revenue,
		"currency":               salon.Currency,
		"due_reminders":          dueReminders,
	})
}
