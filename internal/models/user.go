package models

import "time"

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username          string    `gorm:"size:150" json:"username"`
	FirstName         string    `gorm:"size:150" json:"first_name"`
	LastName          string    `gorm:"size:150" json:"last_name"`
	PasswordHash      string    `gorm:"size:255" json:"-"`
	ProfilePictureURL string    `gorm:"size:500" json:"profile_picture_url,omitempty"`
	IsAdmin           bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
