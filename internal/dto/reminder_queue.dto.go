package dto

import "time"

// ReminderQueueItemDTO is one row of the repeat-visits work queue.
// Class is recomputed on every read, never persisted.
type ReminderQueueItemDTO struct {
	ID uint `json:"id"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	LoyaltyTier string `json:"loyalty_tier"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	StaffName   string `json:"staff_name"`

	LastVisitDate   time.Time `json:"last_visit_date"`
	RecommendedDate time.Time `json:"recommended_date"`

	Status string `json:"status"`
	Class  string `json:"class"`

	SmsSentAt *time.Time `json:"sms_sent_at"`
	CalledAt  *time.Time `json:"called_at"`
}

type ReminderQueueDTO struct {
	Items  []ReminderQueueItemDTO `json:"items"`
	Counts map[string]int         `json:"counts"`
}
