package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/httpresp"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Color          string `json:"color"`

	SalaryType  string  `json:"salary_type" binding:"omitempty,oneof=percentage fixed hourly"`
	SalaryValue float64 `json:"salary_value" binding:"min=0"`
}

type UpdateStaffRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Color          *string `json:"color,omitempty"`

	SalaryType  *string  `json:"salary_type,omitempty" binding:"omitempty,oneof=percentage fixed hourly"`
	SalaryValue *float64 `json:"salary_value,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type ScheduleDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// --------- Staff ---------

func (h *StaffHandler) List(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Where("salon_id = ?", salonID)
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var staff []models.StaffMember
	if err := q.
		Preload("Schedule").
		Order("id ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	salaryType := req.SalaryType
	if salaryType == "" {
		salaryType = models.SalaryPercentage
	}

	staff := models.StaffMember{
		SalonID:        salonID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Specialization: req.Specialization,
		Color:          req.Color,
		SalaryType:     salaryType,
		SalaryValue:    req.SalaryValue,
		Active:         true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	staffID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var staff models.StaffMember
	if err := h.db.
		Where("id = ? AND salon_id = ?", staffID, salonID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Specialization != nil {
		staff.Specialization = *req.Specialization
	}
	if req.Color != nil {
		staff.Color = *req.Color
	}
	if req.SalaryType != nil {
		staff.SalaryType = *req.SalaryType
	}
	if req.SalaryValue != nil && *req.SalaryValue >= 0 {
		staff.SalaryValue = *req.SalaryValue
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// --------- Working schedule ---------

func (h *StaffHandler) GetSchedule(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	staffID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if !h.staffExists(c, salonID, staffID) {
		return
	}

	var schedule []models.WorkSchedule
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&schedule).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (h *StaffHandler) UpdateSchedule(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	staffID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if !h.staffExists(c, salonID, staffID) {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// schedule rows are validated up front so a bad day never lands in storage
	toCreate := make([]models.WorkSchedule, 0, len(req.Days))
	for _, d := range req.Days {
		ws := models.WorkSchedule{
			StaffID:    staffID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		}

		if !domain.ValidateSchedule(&ws) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_schedule",
				"weekday": d.Weekday,
			})
			return
		}

		toCreate = append(toCreate, ws)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).
			Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *StaffHandler) staffExists(c *gin.Context, salonID, staffID uint) bool {
	var count int64
	h.db.Model(&models.StaffMember{}).
		Where("id = ? AND salon_id = ?", staffID, salonID).
		Count(&count)

	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return false
	}
	return true
}
