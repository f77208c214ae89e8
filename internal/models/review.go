package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index;uniqueIndex:idx_review_user_product" json:"product_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_review_user_product" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`

	User User `json:"user,omitempty"`
}

// ProductRating maintient l'agrégat des avis pour éviter un AVG à chaque lecture
type ProductRating struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ProductID     uint    `gorm:"uniqueIndex;not null" json:"product_id"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`
}
