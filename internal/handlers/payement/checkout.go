package pa

import (
	"errors"
	"log"
	"net/http"

	"vendora_back_end/internal/checkout"
	"vendora_back_end/internal/config"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
	"gorm.io/gorm"
)

// Handler porte la connexion et le secret webhook : le cœur de
// fulfillment ne lit aucun état global
type Handler struct {
	db            *gorm.DB
	webhookSecret string
	svc           *checkout.Service
}

func NewHandler(db *gorm.DB, webhookSecret string) *Handler {
	return &Handler{
		db:            db,
		webhookSecret: webhookSecret,
		svc:           checkout.NewService(db),
	}
}

// CreateCheckoutSession crée une session Stripe Checkout à partir du
// panier ; le cart_code voyage dans les metadata pour que le webhook
// retrouve le panier d'origine
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req struct {
		CartCode string `json:"cart_code"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CartCode == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code et email sont obligatoires"})
		return
	}

	var cart models.Cart
	if err := h.db.Preload("Items.Product").Where("cart_code = ?", req.CartCode).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Product.Name),
				},
				UnitAmount: stripe.Int64(item.Product.PriceCents),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		CustomerEmail:      stripe.String(req.Email),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(config.CheckoutSuccessURL()),
		CancelURL:          stripe.String(config.CheckoutCancelURL()),
	}
	params.AddMetadata("cart_code", cart.CartCode)

	s, err := session.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session de paiement"})
		return
	}

	log.Printf("💳 Session Checkout créée: %s pour %s", s.ID, req.Email)
	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// TestOrder rejoue le fulfillment sans Stripe (tests manuels)
func (h *Handler) TestOrder(c *gin.Context) {
	var req struct {
		CartCode string `json:"cart_code"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CartCode == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code et email sont obligatoires"})
		return
	}

	if err := h.svc.FulfillTest(req.CartCode, req.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
			return
		}
		log.Printf("❌ Erreur fulfillment manuel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commande créée manuellement"})
}
