package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vendora_back_end/internal/models"
	"vendora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet("user_id"),
			"is_admin": c.MustGet("is_admin"),
		})
	})
	return r
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  float64(1),
		"email":    "alice@test.be",
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthRequiredRejectsWithoutConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := setupAuthTest(t)

	// Un token signé avec un secret deviné ne doit jamais passer
	// quand aucun secret n'est configuré côté serveur
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "super_secret"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAcceptsGeneratedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret_test")
	r := setupAuthTest(t)

	token, err := utils.GenerateJWT(models.User{Email: "alice@test.be", IsAdmin: true})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
}

func TestAuthRequiredRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret_test")
	r := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "autre_secret"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
