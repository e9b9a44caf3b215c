package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/httpresp"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type TransactionHandler struct {
	db *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type     string  `json:"type" binding:"required"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount" binding:"required"`

	AppointmentID *uint `json:"appointment_id"`
	ClientID      *uint `json:"client_id"`
	StaffID       *uint `json:"staff_id"`

	PaymentMethod string `json:"payment_method"`
	Description   string `json:"description"`
}

func validTransactionType(t string) bool {
	switch t {
	case models.TransactionIncome, models.TransactionExpense, models.TransactionSalary:
		return true
	}
	return false
}

// periodWindow resolves ?from=/&to= (YYYY-MM-DD, salon-local) into a
// half-open UTC range. Missing bounds default to the current month.
func periodWindow(c *gin.Context, salon *models.Salon) (time.Time, time.Time, bool) {
	loc := locationFromSalon(salon)

	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "from must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "to must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		to = t.AddDate(0, 0, 1)
	}

	return from, to, true
}

// ======================================================
// LIST TRANSACTIONS
// ======================================================
func (h *TransactionHandler) List(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	from, to, ok := periodWindow(c, &salon)
	if !ok {
		return
	}

	q := h.db.
		Where("salon_id = ?", salonID).
		Where("created_at >= ? AND created_at < ?", from, to)

	if t := c.Query("type"); t != "" {
		if !validTransactionType(t) {
			httperr.BadRequest(c, "invalid_request", "unknown transaction type")
			return
		}
		q = q.Where("type = ?", t)
	}

	var transactions []models.Transaction
	if err := q.Order("created_at DESC").Find(&transactions).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list transactions")
		return
	}

	httpresp.List(c, transactions)
}

// ======================================================
// CREATE TRANSACTION
// ======================================================
func (h *TransactionHandler) Create(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validTransactionType(req.Type) {
		httperr.BadRequest(c, "invalid_request", "unknown transaction type")
		return
	}
	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_request", "amount must be positive")
		return
	}

	tr := models.Transaction{
		SalonID:       salonID,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		AppointmentID: req.AppointmentID,
		ClientID:      req.ClientID,
		StaffID:       req.StaffID,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}

	if err := h.db.Create(&tr).Error; err != nil {
		httperr.Internal(c, "create_failed", "could not create the transaction")
		return
	}

	c.JSON(http.StatusCreated, tr)
}

// ======================================================
// SUMMARY
// ======================================================
// Summary aggregates the period's totals per type plus the net result.
func (h *TransactionHandler) Summary(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	from, to, ok := periodWindow(c, &salon)
	if !ok {
		return
	}

	type row struct {
		Type  string
		Total float64
	}
	var rows []row
	if err := h.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("salon_id = ?", salonID).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("type").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "summary_failed", "could not build the summary")
		return
	}

	var income, expense, salary float64
	for _, r := range rows {
		switch r.Type {
		case models.TransactionIncome:
			income = r.Total
		case models.TransactionExpense:
			expense = r.Total
		case models.TransactionSalary:
			salary = r.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"from":    from,
		"to":      to,
		"income":  income,
		"expense": expense,
		"salary":  salary,
		"net":     income - expense - salary,
	})
}
