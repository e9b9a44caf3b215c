package models

import "time"

// RepeatVisitReminder tracks one client being due for a follow-up visit of
// one service. At most one non-terminal reminder exists per (client, service);
// creating a new one supersedes the previous.
type RepeatVisitReminder struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StaffID uint        `json:"staff_id"`
	Staff   StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	LastAppointmentID uint `json:"last_appointment_id"`

	// Dates only, midnight in the salon's timezone.
	LastVisitDate   time.Time `json:"last_visit_date"`
	RecommendedDate time.Time `gorm:"index" json:"recommended_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	SmsSentAt *time.Time `json:"sms_sent_at"`
	CalledAt  *time.Time `json:"called_at"`

	FollowUpAppointmentID *uint `json:"follow_up_appointment_id"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
