package models

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Identifiant de session Stripe : clé d'idempotence de la commande.
	// L'index unique est la vraie protection contre les livraisons dupliquées du webhook.
	StripeCheckoutID string      `gorm:"size:255;uniqueIndex;not null" json:"stripe_checkout_id"`
	AmountCents      int64       `gorm:"not null" json:"amount_cents"`
	Currency         string      `gorm:"size:10" json:"currency"`
	CustomerEmail    string      `gorm:"size:255;index" json:"customer_email"`
	Status           OrderStatus `gorm:"size:50" json:"status"`
	CreatedAt        time.Time   `json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// Amount retourne le montant en unités majeures
func (o Order) Amount() float64 {
	return float64(o.AmountCents) / 100
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"not null;index" json:"order_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	// Prix unitaire figé au moment du paiement : un changement de prix
	// ultérieur ne doit pas réécrire l'historique des commandes.
	PriceCents int64 `gorm:"not null" json:"price_cents"`

	Product Product `json:"product"`
}
