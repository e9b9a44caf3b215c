package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/dto"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	ucReminder "github.com/NovaBeautyTech/salon-manager/internal/usecase/reminder"
)

type ReminderHandler struct {
	db *gorm.DB

	listQueue *ucReminder.ListQueue
	markSms   *ucReminder.MarkSmsSent
	markCall  *ucReminder.MarkCalled
	link      *ucReminder.LinkAppointment
	cancel    *ucReminder.CancelReminder
}

func NewReminderHandler(
	db *gorm.DB,
	listQueue *ucReminder.ListQueue,
	markSms *ucReminder.MarkSmsSent,
	markCall *ucReminder.MarkCalled,
	link *ucReminder.LinkAppointment,
	cancel *ucReminder.CancelReminder,
) *ReminderHandler {
	return &ReminderHandler{
		db:        db,
		listQueue: listQueue,
		markSms:   markSms,
		markCall:  markCall,
		link:      link,
		cancel:    cancel,
	}
}

// --------- Requests ---------

type LinkReminderRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// --------- Handlers ---------

// Queue returns the repeat-visit work queue. The class of every row is
// recomputed against the salon's current date on each call.
func (h *ReminderHandler) Queue(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
		return
	}

	queue, err := h.listQueue.Execute(
		c.Request.Context(),
		salonID,
		nowInSalon(&salon),
	)
	if err != nil {
		httperr.Internal(c, "queue_failed", "could not load the reminder queue")
		return
	}

	// optional tab filter: overdue / today / this_week / upcoming
	if tab := c.Query("tab"); tab != "" {
		filtered := make([]dto.ReminderQueueItemDTO, 0, len(queue.Items))
		for _, item := range queue.Items {
			if item.Class == tab {
				filtered = append(filtered, item)
			}
		}
		queue.Items = filtered
	}

	c.JSON(http.StatusOK, queue)
}

func (h *ReminderHandler) MarkSmsSent(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	reminderID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	rem, err := h.markSms.Execute(c.Request.Context(), salonID, reminderID)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "sms_failed", "could not send the reminder sms")
		return
	}

	c.JSON(http.StatusOK, rem)
}

func (h *ReminderHandler) MarkCalled(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	reminderID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	rem, err := h.markCall.Execute(c.Request.Context(), salonID, reminderID)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "call_failed", "could not update the reminder")
		return
	}

	c.JSON(http.StatusOK, rem)
}

func (h *ReminderHandler) Link(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	reminderID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req LinkReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rem, err := h.link.Execute(
		c.Request.Context(),
		salonID,
		reminderID,
		req.AppointmentID,
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "link_failed", "could not link the appointment")
		return
	}

	c.JSON(http.StatusOK, rem)
}

func (h *ReminderHandler) Cancel(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	reminderID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	rem, err := h.cancel.Execute(c.Request.Context(), salonID, reminderID)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "cancel_failed", "could not cancel the reminder")
		return
	}

	c.JSON(http.StatusOK, rem)
}
