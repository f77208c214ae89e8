package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Getenv retourne la variable d'environnement ou la valeur par défaut
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func StripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

// StripeWebhookSecret est lu au démarrage puis injecté dans le handler
// webhook : pas d'état global mutable consommé par le cœur de fulfillment
func StripeWebhookSecret() string {
	return os.Getenv("STRIPE_WEBHOOK_SECRET")
}

func CheckoutSuccessURL() string {
	return Getenv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success")
}

func CheckoutCancelURL() string {
	return Getenv("CHECKOUT_CANCEL_URL", "http://localhost:3000/failed")
}
