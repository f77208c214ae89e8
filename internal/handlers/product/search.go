package product

import (
	"net/http"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"
	"vendora_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// ProductSearch cherche dans le catalogue : Elasticsearch quand il est
// disponible, sinon repli sur un LIKE SQL (nom, description, catégorie)
func ProductSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun terme de recherche fourni"})
		return
	}

	if database.Elastic != nil {
		results, err := services.SearchProducts(query)
		if err == nil {
			c.JSON(http.StatusOK, results)
			return
		}
		// En cas d'erreur Elastic, on retombe sur le SQL
	}

	// LOWER des deux côtés : insensible à la casse sur Postgres comme sur sqlite
	pattern := "%" + query + "%"
	var products []models.Product
	database.DB.Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?) OR LOWER(categories.name) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Distinct("products.*").
		Find(&products)

	c.JSON(http.StatusOK, products)
}
