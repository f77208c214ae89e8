package cache

import (
	"context"
	"encoding/json"
	"time"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"
)

const (
	ProductListCacheKey = "products:featured"
	ProductCacheTTL     = 10 * time.Minute
)

// GetFeaturedProducts récupère la liste vedette depuis Redis.
// Retourne nil si le cache est absent ou désactivé.
func GetFeaturedProducts() []models.Product {
	if database.Redis == nil {
		return nil
	}

	ctx := context.Background()
	data, err := database.Redis.Get(ctx, ProductListCacheKey).Result()
	if err != nil {
		return nil
	}

	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil
	}
	return products
}

// SetFeaturedProducts met la liste vedette en cache
func SetFeaturedProducts(products []models.Product) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), ProductListCacheKey, data, ProductCacheTTL)
}

// InvalidateProducts invalide le cache après toute mutation du catalogue
func InvalidateProducts() {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(context.Background(), ProductListCacheKey)
}
