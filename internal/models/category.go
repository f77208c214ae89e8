package models

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:120;uniqueIndex" json:"slug"`
	ImageURL string `gorm:"size:500" json:"image_url,omitempty"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
