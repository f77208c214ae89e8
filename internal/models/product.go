package models

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	// Prix en centimes pour éviter toute dérive des flottants
	PriceCents int64  `gorm:"not null;check:price_cents >= 0" json:"price_cents"`
	Slug       string `gorm:"size:120;uniqueIndex" json:"slug"`
	ImageURL   string `gorm:"size:500" json:"image_url,omitempty"`
	Featured   bool   `json:"featured"`
	CategoryID *uint  `gorm:"index" json:"category_id,omitempty"`

	Category  *Category `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Price retourne le prix en unités majeures (euros/dollars)
func (p Product) Price() float64 {
	return float64(p.PriceCents) / 100
}
