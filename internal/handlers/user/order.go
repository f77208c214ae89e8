package user

import (
	"net/http"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetOrders liste les commandes d'un client, plus récentes d'abord
func GetOrders(c *gin.Context) {
	email := c.Query("email")

	var orders []models.Order
	database.DB.Preload("Items.Product").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders)

	payload := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items := make([]gin.H, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, gin.H{
				"id":       item.ID,
				"quantity": item.Quantity,
				"price":    float64(item.PriceCents) / 100,
				"product": gin.H{
					"id":   item.Product.ID,
					"name": item.Product.Name,
					"slug": item.Product.Slug,
				},
			})
		}
		payload = append(payload, gin.H{
			"id":                 o.ID,
			"stripe_checkout_id": o.StripeCheckoutID,
			"amount":             o.Amount(),
			"currency":           o.Currency,
			"customer_email":     o.CustomerEmail,
			"status":             o.Status,
			"created":            o.CreatedAt,
			"items":              items,
		})
	}

	c.JSON(http.StatusOK, payload)
}
