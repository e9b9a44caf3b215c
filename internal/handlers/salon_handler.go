package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

// --------- Requests ---------

type UpdateSalonRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	SmsAutoSend *bool   `json:"sms_auto_send,omitempty"`
}

// --------- Handlers ---------

func (h *SalonHandler) Get(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_salon"})
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_salon"})
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = *req.Email
	}
	if req.Timezone != nil {
		salon.Timezone = *req.Timezone
	}
	if req.Currency != nil {
		salon.Currency = *req.Currency
	}
	if req.SmsAutoSend != nil {
		salon.SmsAutoSend = *req.SmsAutoSend
	}

	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	c.JSON(http.StatusOK, salon)
}
