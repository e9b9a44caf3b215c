package models

import "time"

const (
	SalaryPercentage = "percentage"
	SalaryFixed      = "fixed"
	SalaryHourly     = "hourly"
)

type StaffMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	LastName       string `gorm:"size:100" json:"last_name"`
	Phone          string `gorm:"size:20" json:"phone"`
	Email          string `gorm:"size:100" json:"email"`
	Specialization string `gorm:"size:100" json:"specialization"`

	// Calendar color tag, hex string like "#3b82f6".
	Color     string `gorm:"size:10" json:"color"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	SalaryType  string  `gorm:"size:20;default:'percentage'" json:"salary_type"`
	SalaryValue float64 `gorm:"default:0" json:"salary_value"`

	Active bool `gorm:"default:true" json:"active"`

	Schedule []WorkSchedule `gorm:"foreignKey:StaffID" json:"schedule,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StaffMember) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// WorkSchedule is one weekday row of a staff member's working hours.
// Times are "15:04" strings interpreted in the salon's timezone.
type WorkSchedule struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"index" json:"staff_id"`

	Weekday int `json:"weekday"`

	Active     bool   `json:"active"`
	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
