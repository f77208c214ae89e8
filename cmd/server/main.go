package main

import (
	"context"
	"log"
	"os"

	"vendora_back_end/internal/config"
	"vendora_back_end/internal/database"
	"vendora_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = config.StripeSecretKey()
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	database.ConnectDatabases()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("FRONTEND_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Vendora lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache fait un ping pour établir la connexion avant la
// première requête
func warmupRedisCache() {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Ping(context.Background()).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
