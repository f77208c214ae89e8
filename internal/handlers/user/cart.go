package user

import (
	"errors"
	"net/http"
	"strconv"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// cartItemPayload expose une ligne avec son sous-total dérivé à la
// lecture (prix courant × quantité, jamais snapshotté côté panier)
func cartItemPayload(item models.CartItem) gin.H {
	return gin.H{
		"id":        item.ID,
		"quantity":  item.Quantity,
		"sub_total": float64(item.SubTotalCents()) / 100,
		"product": gin.H{
			"id":        item.Product.ID,
			"name":      item.Product.Name,
			"slug":      item.Product.Slug,
			"price":     item.Product.Price(),
			"image_url": item.Product.ImageURL,
		},
	}
}

func cartPayload(cart models.Cart) gin.H {
	items := make([]gin.H, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemPayload(item))
	}
	return gin.H{
		"id":        cart.ID,
		"cart_code": cart.CartCode,
		"items":     items,
		"total":     float64(cart.TotalCents()) / 100,
	}
}

func loadCart(code string) (models.Cart, error) {
	var cart models.Cart
	err := database.DB.Preload("Items.Product").Where("cart_code = ?", code).First(&cart).Error
	return cart, err
}

// AddToCart crée le panier au premier ajout, puis incrémente la
// quantité si le produit y figure déjà
func AddToCart(c *gin.Context) {
	var req struct {
		CartCode  string `json:"cart_code"`
		ProductID uint   `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CartCode == "" || req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code et product_id sont obligatoires"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var cart models.Cart
	if err := database.DB.Where(models.Cart{CartCode: req.CartCode}).FirstOrCreate(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création panier"})
		return
	}

	var item models.CartItem
	err := database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity++
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	cart, _ = loadCart(cart.CartCode)
	c.JSON(http.StatusOK, cartPayload(cart))
}

// UpdateCartItemQuantity fixe la quantité d'une ligne
func UpdateCartItemQuantity(c *gin.Context) {
	var req struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id est obligatoire"})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La quantité doit être positive"})
		return
	}

	var item models.CartItem
	if err := database.DB.Preload("Product").First(&item, req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ligne de panier introuvable"})
		return
	}

	item.Quantity = req.Quantity
	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    cartItemPayload(item),
		"message": "Ligne de panier mise à jour",
	})
}

// DeleteCartItem supprime une ligne du panier
func DeleteCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var item models.CartItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ligne de panier introuvable"})
		return
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ligne de panier supprimée"})
}

// GetCart retourne le panier complet avec sous-totaux
func GetCart(c *gin.Context) {
	cart, err := loadCart(c.Param("cart_code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	c.JSON(http.StatusOK, cartPayload(cart))
}

// CartStat retourne le résumé du panier (badge frontend)
func CartStat(c *gin.Context) {
	cart, err := loadCart(c.Query("cart_code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}

	numItems := 0
	for _, item := range cart.Items {
		numItems += item.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           cart.ID,
		"cart_code":    cart.CartCode,
		"num_of_items": numItems,
		"total":        float64(cart.TotalCents()) / 100,
	})
}

// ProductInCart indique si un produit figure déjà dans le panier
func ProductInCart(c *gin.Context) {
	cartCode := c.Query("cart_code")
	productID := c.Query("product_id")

	var cart models.Cart
	if err := database.DB.Where("cart_code = ?", cartCode).First(&cart).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"product_in_cart": false})
		return
	}

	var count int64
	database.DB.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{"product_in_cart": count > 0})
}
