package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	ucAppointment "github.com/NovaBeautyTech/salon-manager/internal/usecase/appointment"
)

type AppointmentHandler struct {
	db *gorm.DB

	propose      *ucAppointment.ProposeBooking
	transition   *ucAppointment.TransitionStatus
	availability *ucAppointment.GetAvailability
	listByDate   *ucAppointment.ListByDate
	listByMonth  *ucAppointment.ListByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	propose *ucAppointment.ProposeBooking,
	transition *ucAppointment.TransitionStatus,
	availability *ucAppointment.GetAvailability,
	listByDate *ucAppointment.ListByDate,
	listByMonth *ucAppointment.ListByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		propose:      propose,
		transition:   transition,
		availability: availability,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	StaffID   uint `json:"staff_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`
	ClientID  uint `json:"client_id" binding:"required"`

	Date string `json:"date" binding:"required"` // 2006-01-02
	Time string `json:"time" binding:"required"` // 15:04

	Notes       string `json:"notes"`
	ClientNotes string `json:"client_notes"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.propose.Execute(c.Request.Context(), ucAppointment.ProposeBookingInput{
		SalonID:     salonID,
		StaffID:     req.StaffID,
		ServiceID:   req.ServiceID,
		ClientID:    req.ClientID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		ClientNotes: req.ClientNotes,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "booking_failed", "could not create the appointment")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	appointmentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.transition.Execute(
		c.Request.Context(),
		salonID,
		appointmentID,
		req.Status,
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "transition_failed", "could not update the appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
		return
	}

	date, err := parseDateInSalon(&salon, c.DefaultQuery("date", nowInSalon(&salon).Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	out, err := h.listByDate.Execute(
		c.Request.Context(),
		salonID,
		uintQuery(c, "staff_id"),
		date,
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "list_failed", "could not list appointments")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_year_or_month"})
		return
	}

	out, err := h.listByMonth.Execute(
		c.Request.Context(),
		salonID,
		uintQuery(c, "staff_id"),
		year,
		month,
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "list_failed", "could not list appointments")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	staffID := uintQuery(c, "staff_id")
	serviceID := uintQuery(c, "service_id")
	if staffID == 0 || serviceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_id_and_service_id_required"})
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
		return
	}

	date, err := parseDateInSalon(&salon, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:   salonID,
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "availability_failed", "could not compute availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
