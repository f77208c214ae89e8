package product

import (
	"net/http"
	"os"
	"strconv"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"
	"vendora_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadProductImage reçoit une image multipart, l'envoie vers MinIO
// et enregistre l'URL sur le produit (admin)
func UploadProductImage(c *gin.Context) {
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

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' manquant"})
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "vendora-media"
	}

	url, err := services.UploadFile(bucket, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image", "details": err.Error()})
		return
	}

	p.ImageURL = url
	if err := database.DB.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement image"})
		return
	}

	invalidateProducts()
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
