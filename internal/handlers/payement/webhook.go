package pa

import (
	"encoding/json"
	"log"
	"net/http"

	"vendora_back_end/internal/checkout"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

//
// 🔔 Webhook Stripe : matérialisation des commandes
//

// StripeWebhook accepte un événement signé et ne déclenche le
// fulfillment que pour les deux types de session aboutie. Tout autre
// type est acquitté sans effet. 400 signature invalide, 500 erreur de
// fulfillment (le gateway relivrera), 200 sinon.
func (h *Handler) StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEvent(payload,
		c.GetHeader("Stripe-Signature"),
		h.webhookSecret,
	)
	if err != nil {
		log.Printf("⚠️ Signature webhook invalide: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			log.Printf("❌ Événement %s illisible: %v", event.Type, err)
			c.Status(http.StatusInternalServerError)
			return
		}

		email := s.CustomerEmail
		if email == "" && s.CustomerDetails != nil {
			email = s.CustomerDetails.Email
		}

		session := checkout.Session{
			ID:            s.ID,
			AmountTotal:   s.AmountTotal,
			Currency:      string(s.Currency),
			CustomerEmail: email,
		}

		if err := h.svc.Fulfill(session, s.Metadata["cart_code"]); err != nil {
			log.Printf("⚠️ Webhook échoué: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	c.Status(http.StatusOK)
}
