package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
	TransactionSalary  = "salary"
)

type Transaction struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	AppointmentID *uint `json:"appointment_id"`
	ClientID      *uint `json:"client_id"`
	StaffID       *uint `json:"staff_id"`

	Type     string  `gorm:"size:20;not null" json:"type"`
	Category string  `gorm:"size:50" json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`

	PaymentMethod string `gorm:"size:30" json:"payment_method"`
	Description   string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
