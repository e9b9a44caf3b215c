package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentPending       = "pending"
	PaymentPaid          = "paid"
	PaymentPartiallyPaid = "partially_paid"
)

type Appointment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	// Public booking reference, safe to hand to clients.
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StaffID uint        `json:"staff_id"`
	Staff   StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"final_price"`

	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentMethod string `gorm:"size:30" json:"payment_method"`

	Notes       string `gorm:"size:255" json:"notes"`
	ClientNotes string `gorm:"size:255" json:"client_notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
