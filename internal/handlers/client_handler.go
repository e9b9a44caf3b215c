package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/httpresp"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`

	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender"`
	Notes       string     `json:"notes"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	Notes       *string    `json:"notes,omitempty"`

	LoyaltyPoints *int    `json:"loyalty_points,omitempty"`
	LoyaltyTier   *string `json:"loyalty_tier,omitempty"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	tier := strings.ToLower(strings.TrimSpace(c.Query("tier")))

	q := h.db.Where("salon_id = ?", salonID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	if tier != "" {
		q = q.Where("loyalty_tier = ?", tier)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET / CREATE / UPDATE
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	clientID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND salon_id = ?", clientID, salonID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone := validators.NormalizePhone(req.Phone)
	if !validators.IsPhoneValid(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	var count int64
	h.db.Model(&models.Client{}).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "phone_already_exists"})
		return
	}

	client := models.Client{
		SalonID:     salonID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       phone,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Notes:       req.Notes,
		LoyaltyTier: models.TierBronze,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	clientID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND salon_id = ?", clientID, salonID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Phone != nil {
		phone := validators.NormalizePhone(*req.Phone)
		if !validators.IsPhoneValid(phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
			return
		}
		client.Phone = phone
	}
	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.DateOfBirth != nil {
		client.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.LoyaltyPoints != nil && *req.LoyaltyPoints >= 0 {
		client.LoyaltyPoints = *req.LoyaltyPoints
	}
	if req.LoyaltyTier != nil {
		switch *req.LoyaltyTier {
		case models.TierBronze, models.TierSilver, models.TierGold, models.TierPlatinum:
			client.LoyaltyTier = *req.LoyaltyTier
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loyalty_tier"})
			return
		}
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}
