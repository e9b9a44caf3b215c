package models

import "time"

type Product struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	SKU     string `gorm:"size:50" json:"sku"`
	Barcode string `gorm:"size:50" json:"barcode"`

	Unit        string  `gorm:"size:20;default:'pcs'" json:"unit"`
	Quantity    float64 `gorm:"default:0" json:"quantity"`
	MinQuantity float64 `gorm:"default:0" json:"min_quantity"`

	CostPrice float64 `json:"cost_price"`
	SellPrice float64 `json:"sell_price"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock is a read-side projection, never stored.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
