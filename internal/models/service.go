package models

import "time"

type ServiceCategory struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	CategoryID *uint `json:"category_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`

	// Days after a completed visit before a follow-up is recommended.
	// Zero disables repeat-visit reminders for this service.
	RepeatIntervalDays int `gorm:"default:0" json:"repeat_interval_days"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarginPercent is display-only and recomputed on every read.
func (s *Service) MarginPercent() float64 {
	if s.Price <= 0 {
		return 0
	}
	return (s.Price - s.Cost) / s.Price * 100
}
