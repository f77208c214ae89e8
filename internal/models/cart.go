package models

import "time"

type Cart struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CartCode string `gorm:"size:11;uniqueIndex;not null" json:"cart_code"`
	UserID   *uint  `gorm:"index" json:"user_id,omitempty"`

	Items     []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalCents additionne prix × quantité sur les lignes chargées
func (c Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.SubTotalCents()
	}
	return total
}

type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"not null;index" json:"cart_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`

	Product Product `json:"product"`
}

// SubTotalCents calcule le sous-total de la ligne (produit préchargé requis)
func (ci CartItem) SubTotalCents() int64 {
	return ci.Product.PriceCents * int64(ci.Quantity)
}
