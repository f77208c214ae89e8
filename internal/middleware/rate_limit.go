package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vendora_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return emailRateLimit("login_attempts:", LoginMaxAttempts, LoginCooldown)
}

// RegisterRateLimit limite les créations de compte par email
func RegisterRateLimit() gin.HandlerFunc {
	return emailRateLimit("register_attempts:", RegisterMaxAttempts, RegisterCooldown)
}

func emailRateLimit(prefix string, maxAttempts int, cooldown time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Sans Redis, pas de limitation
		if database.Redis == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			// Lecture impossible : on laisse le handler gérer le body tel quel
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		key := prefix + input.Email

		attempts, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if attempts == 1 {
			database.Redis.Expire(ctx, key, cooldown)
		}

		if attempts > int64(maxAttempts) {
			ttl, _ := database.Redis.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de tentatives, réessayez plus tard",
				"retry_after": fmt.Sprintf("%.0f secondes", ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
