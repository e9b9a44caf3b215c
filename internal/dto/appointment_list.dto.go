package dto

import (
	"time"

	"github.com/google/uuid"
)

// CalendarAppointmentDTO is the calendar-grid projection of an appointment.
type CalendarAppointmentDTO struct {
	ID        uint      `json:"id"`
	Reference uuid.UUID `json:"reference"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`

	ClientName  string `json:"client_name"`
	StaffID     uint   `json:"staff_id"`
	StaffName   string `json:"staff_name"`
	StaffColor  string `json:"staff_color"`
	ServiceName string `json:"service_name"`

	FinalPrice    float64 `json:"final_price"`
	PaymentStatus string  `json:"payment_status"`
}
