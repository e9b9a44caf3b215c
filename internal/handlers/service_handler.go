package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/httpresp"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	Cost        float64 `json:"cost" binding:"min=0"`

	RepeatIntervalDays int `json:"repeat_interval_days" binding:"min=0"`
}

type UpdateServiceRequest struct {
	CategoryID  *uint    `json:"category_id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`

	RepeatIntervalDays *int  `json:"repeat_interval_days,omitempty"`
	Active             *bool `json:"active,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// serviceView adds the display-only margin, recomputed on every read.
type serviceView struct {
	models.Service
	MarginPercent float64 `json:"margin_percent"`
}

// --------- Services ---------

func (h *ServiceHandler) List(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	categoryID := uintQuery(c, "category_id")

	q := h.db.Where("salon_id = ?", salonID)

	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	out := make([]serviceView, 0, len(services))
	for _, s := range services {
		out = append(out, serviceView{
			Service:       s,
			MarginPercent: s.MarginPercent(),
		})
	}

	httpresp.List(c, out)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		SalonID:            salonID,
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Description:        req.Description,
		DurationMin:        req.DurationMin,
		Price:              req.Price,
		Cost:               req.Cost,
		RepeatIntervalDays: req.RepeatIntervalDays,
		Active:             true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	serviceID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.DurationMin != nil && *req.DurationMin <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
		return
	}
	if req.RepeatIntervalDays != nil && *req.RepeatIntervalDays < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_repeat_interval"})
		return
	}

	if req.CategoryID != nil {
		service.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Cost != nil {
		service.Cost = *req.Cost
	}
	if req.RepeatIntervalDays != nil {
		service.RepeatIntervalDays = *req.RepeatIntervalDays
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// --------- Categories ---------

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var categories []models.ServiceCategory
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}

	httpresp.List(c, categories)
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := models.ServiceCategory{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *ServiceHandler) UpdateCategory(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	categoryID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var category models.ServiceCategory
	if err := h.db.
		Where("id = ? AND salon_id = ?", categoryID, salonID).
		First(&category).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := h.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_category"})
		return
	}

	c.JSON(http.StatusOK, category)
}
