package product

import (
	"net/http"
	"strconv"

	"vendora_back_end/internal/cache"
	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"
	"vendora_back_end/internal/services"
	"vendora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// invalidateProducts vide le cache des produits mis en avant ;
// variable pour pouvoir l'observer dans les tests
var invalidateProducts = cache.InvalidateProducts

// ProductList retourne les produits mis en avant (avec cache Redis)
func ProductList(c *gin.Context) {
	if cached := cache.GetFeaturedProducts(); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var products []models.Product
	database.DB.Preload("Category").Where("featured = ?", true).Find(&products)

	cache.SetFeaturedProducts(products)
	c.JSON(http.StatusOK, products)
}

// ProductDetail retourne un produit par son slug, avec ses avis
func ProductDetail(c *gin.Context) {
	var p models.Product
	if err := database.DB.Preload("Category").Where("slug = ?", c.Param("slug")).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var reviews []models.Review
	database.DB.Preload("User").Where("product_id = ?", p.ID).Order("created_at DESC").Find(&reviews)

	var rating models.ProductRating
	database.DB.Where("product_id = ?", p.ID).First(&rating)

	var similar []models.Product
	if p.CategoryID != nil {
		database.DB.Where("category_id = ? AND id != ?", *p.CategoryID, p.ID).Limit(4).Find(&similar)
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          p,
		"reviews":          reviews,
		"rating":           rating,
		"similar_products": similar,
	})
}

// CreateProduct crée un produit (admin) ; le slug est généré avec
// retries d'unicité à partir du nom
func CreateProduct(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
		Featured    *bool  `json:"featured"`
		CategoryID  *uint  `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	slug, err := utils.UniqueSlug(database.DB, "products", req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération slug"})
		return
	}

	p := models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Slug:        slug,
		Featured:    true,
		CategoryID:  req.CategoryID,
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	invalidateProducts()
	services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

// UpdateProduct modifie un produit existant (admin)
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var p models.Product
	if err := database.DB.First(&p, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		PriceCents  *int64  `json:"price_cents"`
		Featured    *bool   `json:"featured"`
		CategoryID  *uint   `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}

	if err := database.DB.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	invalidateProducts()
	services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

// DeleteProduct supprime un produit (admin)
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var p models.Product
	if err := database.DB.First(&p, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err := database.DB.Delete(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	invalidateProducts()
	services.RemoveProductIndex(p.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
