package models

import "time"

type CustomerAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Email     string    `gorm:"size:255" json:"email"`
	Street    string    `gorm:"size:255" json:"street"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created"`
}

// AddressUpdate liste explicitement les champs modifiables d'une adresse.
// Remplace l'affectation dynamique champ-par-nom : chaque champ est
// appliqué individuellement, vérifié à la compilation.
type AddressUpdate struct {
	Email  string `json:"email"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Phone  string `json:"phone"`
}

// Apply reporte les champs de la mise à jour sur l'adresse
func (a *CustomerAddress) Apply(u AddressUpdate) {
	a.Email = u.Email
	a.Street = u.Street
	a.City = u.City
	a.State = u.State
	a.Phone = u.Phone
}
