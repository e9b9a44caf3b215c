package models

import "time"

// Salon is the tenant root: every other record hangs off a salon and
// every API route is scoped by its id.
type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:30" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	// IANA name; all scheduling math happens in this zone.
	Timezone string `gorm:"size:50;default:'Europe/Kyiv'" json:"timezone"`
	Currency string `gorm:"size:3;default:'UAH'" json:"currency"`

	// When set, the daily sweep sends reminder SMS without staff action.
	SmsAutoSend bool `gorm:"default:false" json:"sms_auto_send"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
