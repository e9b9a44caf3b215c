package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/httpresp"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name    string `json:"name" binding:"required"`
	SKU     string `json:"sku"`
	Barcode string `json:"barcode"`

	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"min_quantity"`

	CostPrice float64 `json:"cost_price"`
	SellPrice float64 `json:"sell_price"`
}

type UpdateProductRequest struct {
	Name    *string `json:"name,omitempty"`
	SKU     *string `json:"sku,omitempty"`
	Barcode *string `json:"barcode,omitempty"`

	Unit        *string  `json:"unit,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	MinQuantity *float64 `json:"min_quantity,omitempty"`

	CostPrice *float64 `json:"cost_price,omitempty"`
	SellPrice *float64 `json:"sell_price,omitempty"`

	Active *bool `json:"active,omitempty"`
}

type AdjustStockRequest struct {
	Delta  float64 `json:"delta" binding:"required"`
	Reason string  `json:"reason"`
}

type productView struct {
	models.Product
	LowStock bool `json:"low_stock"`
}

// ======================================================
// LIST PRODUCTS
// ======================================================
func (h *ProductHandler) List(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	q := h.db.Where("salon_id = ?", salonID)

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR sku LIKE ? OR barcode LIKE ?", like, like, like)
	}

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list products")
		return
	}

	lowOnly := c.Query("low_stock") == "true"

	out := make([]productView, 0, len(products))
	for _, p := range products {
		low := p.LowStock()
		if lowOnly && !low {
			continue
		}
		out = append(out, productView{Product: p, LowStock: low})
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE PRODUCT
// ======================================================
func (h *ProductHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Quantity < 0 || req.MinQuantity < 0 {
		httperr.BadRequest(c, "invalid_request", "quantities cannot be negative")
		return
	}

	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := models.Product{
		SalonID:     salonID,
		Name:        req.Name,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Unit:        unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "create_failed", "could not create the product")
		return
	}

	c.JSON(http.StatusCreated, productView{Product: product, LowStock: product.LowStock()})
}

// ======================================================
// UPDATE PRODUCT
// ======================================================
func (h *ProductHandler) Update(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	productID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var product models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&product, productID).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "product not found")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			httperr.BadRequest(c, "invalid_request", "quantity cannot be negative")
			return
		}
		product.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		if *req.MinQuantity < 0 {
			httperr.BadRequest(c, "invalid_request", "min quantity cannot be negative")
			return
		}
		product.MinQuantity = *req.MinQuantity
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		product.SellPrice = *req.SellPrice
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not update the product")
		return
	}

	c.JSON(http.StatusOK, productView{Product: product, LowStock: product.LowStock()})
}

// ======================================================
// ADJUST STOCK
// ======================================================
// AdjustStock moves the stock level by a signed delta inside a
// transaction, refusing any adjustment that would take it below zero.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	productID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var product models.Product
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("salon_id = ?", salonID).
			First(&product, productID).Error; err != nil {
			return httperr.ErrBusiness("product_not_found")
		}

		next := product.Quantity + req.Delta
		if next < 0 {
			return httperr.ErrBusiness("insufficient_stock")
		}

		product.Quantity = next
		return tx.Save(&product).Error
	})
	if txErr != nil {
		if httperr.WriteBusiness(c, txErr) {
			return
		}
		httperr.Internal(c, "adjust_failed", "could not adjust the stock level")
		return
	}

	c.JSON(http.StatusOK, productView{Product: product, LowStock: product.LowStock()})
}
