package product

import (
	"net/http"
	"strconv"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// refreshRating recalcule l'agrégat d'avis d'un produit
func refreshRating(db *gorm.DB, productID uint) {
	var stats struct {
		Avg   float64
		Count int
	}
	db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ?", productID).
		Scan(&stats)

	var rating models.ProductRating
	if err := db.Where("product_id = ?", productID).First(&rating).Error; err != nil {
		rating = models.ProductRating{ProductID: productID}
	}
	rating.AverageRating = stats.Avg
	rating.TotalReviews = stats.Count
	db.Save(&rating)
}

// AddReview crée un avis ; un seul avis par couple (utilisateur, produit)
func AddReview(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"product_id" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Rating    int    `json:"rating" binding:"required,min=1,max=5"`
		Review    string `json:"review" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	var p models.Product
	if err := database.DB.First(&p, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var u models.User
	if err := database.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	var count int64
	database.DB.Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", p.ID, u.ID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vous avez déjà laissé un avis sur ce produit"})
		return
	}

	review := models.Review{
		ProductID: p.ID,
		UserID:    u.ID,
		Rating:    req.Rating,
		Review:    req.Review,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création avis"})
		return
	}

	refreshRating(database.DB, p.ID)

	database.DB.Preload("User").First(&review, review.ID)
	c.JSON(http.StatusCreated, review)
}

// UpdateReview modifie la note et/ou le texte d'un avis
func UpdateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avis introuvable"})
		return
	}

	var req struct {
		Rating *int    `json:"rating"`
		Review *string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La note doit être entre 1 et 5"})
			return
		}
		review.Rating = *req.Rating
	}
	if req.Review != nil {
		review.Review = *req.Review
	}

	if err := database.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour avis"})
		return
	}

	refreshRating(database.DB, review.ProductID)
	c.JSON(http.StatusOK, review)
}

// DeleteReview supprime un avis
func DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avis introuvable"})
		return
	}

	productID := review.ProductID
	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression avis"})
		return
	}

	refreshRating(database.DB, productID)
	c.JSON(http.StatusOK, gin.H{"message": "Avis supprimé"})
}
