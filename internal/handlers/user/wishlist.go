package user

import (
	"net/http"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// AddToWishlist bascule la présence du produit dans la wishlist :
// déjà présent → retiré, absent → ajouté
func AddToWishlist(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		ProductID uint   `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email et product_id sont obligatoires"})
		return
	}

	var u models.User
	if err := database.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var existing models.Wishlist
	err := database.DB.Where("user_id = ? AND product_id = ?", u.ID, product.ID).First(&existing).Error
	if err == nil {
		database.DB.Delete(&existing)
		c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
		return
	}

	item := models.Wishlist{UserID: u.ID, ProductID: product.ID}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout wishlist"})
		return
	}

	database.DB.Preload("Product").First(&item, item.ID)
	c.JSON(http.StatusCreated, item)
}

// MyWishlists liste la wishlist d'un utilisateur
func MyWishlists(c *gin.Context) {
	email := c.Query("email")

	var items []models.Wishlist
	database.DB.Preload("Product").
		Joins("JOIN users ON users.id = wishlists.user_id").
		Where("users.email = ?", email).
		Find(&items)

	c.JSON(http.StatusOK, items)
}

// ProductInWishlist indique si un produit figure dans la wishlist
func ProductInWishlist(c *gin.Context) {
	email := c.Query("email")
	productID := c.Query("product_id")

	var count int64
	database.DB.Model(&models.Wishlist{}).
		Joins("JOIN users ON users.id = wishlists.user_id").
		Where("users.email = ? AND wishlists.product_id = ?", email, productID).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{"product_in_wishlist": count > 0})
}
