package product

import (
	"net/http"
	"strconv"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"
	"vendora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// CategoryList retourne toutes les catégories
func CategoryList(c *gin.Context) {
	var categories []models.Category
	database.DB.Find(&categories)
	c.JSON(http.StatusOK, categories)
}

// CategoryDetail retourne une catégorie et ses produits
func CategoryDetail(c *gin.Context) {
	var cat models.Category
	if err := database.DB.Preload("Products").Where("slug = ?", c.Param("slug")).First(&cat).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateCategory crée une catégorie (admin), slug auto-généré
func CreateCategory(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	slug, err := utils.UniqueSlug(database.DB, "categories", req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération slug"})
		return
	}

	cat := models.Category{Name: req.Name, Slug: slug, ImageURL: req.ImageURL}
	if err := database.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création catégorie"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory modifie une catégorie (admin)
func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	var req struct {
		Name     *string `json:"name"`
		ImageURL *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.ImageURL != nil {
		cat.ImageURL = *req.ImageURL
	}

	if err := database.DB.Save(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour catégorie"})
		return
	}

	// Le cache des produits mis en avant embarque la catégorie
	invalidateProducts()

	c.JSON(http.StatusOK, cat)
}

// DeleteCategory supprime une catégorie (admin) ; les produits
// rattachés perdent leur catégorie (SET NULL)
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	if err := database.DB.Delete(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression catégorie"})
		return
	}

	invalidateProducts()

	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
