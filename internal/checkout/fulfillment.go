package checkout

import (
	"log"

	"vendora_back_end/internal/models"

	"gorm.io/gorm"
)

// Session décrit une session de paiement aboutie, telle que reçue du
// prestataire (montant en centimes)
type Session struct {
	ID            string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
}

// Service matérialise les commandes à partir des sessions de paiement.
// Construit avec sa connexion : aucun état global n'est consommé ici.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Fulfill convertit une session payée et son panier en une commande
// durable, puis supprime le panier.
//
// Idempotence : si une commande existe déjà pour cette session, l'appel
// est un no-op. Sous livraisons concurrentes du même événement, c'est
// l'index unique sur stripe_checkout_id qui tranche — le perdant voit
// sa transaction entière annulée et la relivraison retombe sur le no-op.
func (s *Service) Fulfill(session Session, cartCode string) error {
	var count int64
	if err := s.db.Model(&models.Order{}).
		Where("stripe_checkout_id = ?", session.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Commande déjà existante pour la session:", session.ID)
		return nil
	}

	var cart models.Cart
	if err := s.db.Preload("Items.Product").
		Where("cart_code = ?", cartCode).
		First(&cart).Error; err != nil {
		// gorm.ErrRecordNotFound remonte tel quel : panier introuvable
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			StripeCheckoutID: session.ID,
			AmountCents:      session.AmountTotal,
			Currency:         session.Currency,
			CustomerEmail:    session.CustomerEmail,
			Status:           models.OrderStatusPaid,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				PriceCents: item.Product.PriceCents,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		// Supprime le panier et ses lignes dans la même transaction
		if err := tx.Select("Items").Delete(&cart).Error; err != nil {
			return err
		}

		log.Printf("✅ Commande créée: %s (%d articles) pour %s",
			session.ID, len(cart.Items), session.CustomerEmail)
		return nil
	})
}

// FulfillTest rejoue le flux complet sans passer par Stripe : une
// session est fabriquée avec un identifiant déterministe et le total
// courant du panier. Mêmes contrats d'idempotence et d'erreur.
func (s *Service) FulfillTest(cartCode, email string) error {
	var cart models.Cart
	if err := s.db.Preload("Items.Product").
		Where("cart_code = ?", cartCode).
		First(&cart).Error; err != nil {
		return err
	}

	session := Session{
		ID:            "cs_test_manual_" + cartCode,
		AmountTotal:   cart.TotalCents(),
		Currency:      "usd",
		CustomerEmail: email,
	}

	return s.Fulfill(session, cartCode)
}
