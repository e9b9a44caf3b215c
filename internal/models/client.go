package models

import "time"

// Loyalty tiers are stored as-is; the tier assignment policy lives outside
// this service, we only persist and expose the current value.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index;uniqueIndex:idx_salon_client_phone" json:"salon_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20;not null;uniqueIndex:idx_salon_client_phone" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`

	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `gorm:"size:20" json:"gender"`
	Notes       string     `gorm:"size:500" json:"notes"`

	LoyaltyPoints int     `gorm:"default:0" json:"loyalty_points"`
	LoyaltyTier   string  `gorm:"size:20;default:'bronze'" json:"loyalty_tier"`
	TotalSpent    float64 `gorm:"default:0" json:"total_spent"`
	TotalVisits   int     `gorm:"default:0" json:"total_visits"`

	LastVisitDate *time.Time `json:"last_visit_date"`
	AvatarURL     string     `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
