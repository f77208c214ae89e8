package user

import (
	"net/http"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// AddAddress crée ou remplace l'adresse du client. La mise à jour
// passe par un AddressUpdate structuré appliqué champ par champ.
func AddAddress(c *gin.Context) {
	var req models.AddressUpdate
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email est obligatoire"})
		return
	}

	var u models.User
	if err := database.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	var address models.CustomerAddress
	err := database.DB.Where("user_id = ?", u.ID).First(&address).Error
	if err != nil {
		address = models.CustomerAddress{UserID: u.ID}
	}

	address.Apply(req)

	if err := database.DB.Save(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement adresse"})
		return
	}

	c.JSON(http.StatusCreated, address)
}

// GetAddress retourne la dernière adresse connue d'un client
func GetAddress(c *gin.Context) {
	email := c.Query("email")

	var address models.CustomerAddress
	err := database.DB.
		Joins("JOIN users ON users.id = customer_addresses.user_id").
		Where("users.email = ?", email).
		Order("customer_addresses.id DESC").
		First(&address).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
		return
	}

	c.JSON(http.StatusOK, address)
}
