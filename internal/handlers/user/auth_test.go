package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users", CreateUser)
	r.GET("/api/users/exists/:email", ExistingUser)
	r.POST("/api/login", Login)
	r.POST("/api/address", AddAddress)
	r.GET("/api/address", GetAddress)
	r.POST("/api/wishlist", AddToWishlist)
	r.GET("/api/wishlist/contains", ProductInWishlist)
	return r
}

func TestCreateUserAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret_test")
	r := setupUserTest(t)

	body := []byte(`{"email": "a@b.com", "username": "alex", "password": "motdepasse8"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	// Le hash ne sort jamais dans le JSON
	assert.NotContains(t, w.Body.String(), "argon2id")

	// Email déjà pris
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Existence
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/exists/a@b.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exists":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/exists/x@y.com", nil))
	assert.Contains(t, w.Body.String(), `"exists":false`)

	// Login OK
	login := []byte(`{"email": "a@b.com", "password": "motdepasse8"}`)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(login)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	// Mauvais mot de passe
	bad := []byte(`{"email": "a@b.com", "password": "mauvais-mdp"}`)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(bad)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := setupUserTest(t)

	body := []byte(`{"email": "a@b.com", "username": "alex", "password": "motdepasse8"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	// Sans secret configuré, aucun token n'est signé
	login := []byte(`{"email": "a@b.com", "password": "motdepasse8"}`)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(login)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), `"token"`)
}

func TestAddressUpsert(t *testing.T) {
	r := setupUserTest(t)
	require.NoError(t, database.DB.Create(&models.User{Email: "a@b.com"}).Error)

	body, _ := json.Marshal(gin.H{
		"email": "a@b.com", "street": "1 rue de la Paix",
		"city": "Paris", "state": "IDF", "phone": "0102030405",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/address", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	// Une seconde écriture remplace, ne duplique pas
	body, _ = json.Marshal(gin.H{
		"email": "a@b.com", "street": "2 avenue Foch",
		"city": "Lyon", "state": "ARA", "phone": "0607080910",
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/address", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	database.DB.Model(&models.CustomerAddress{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/address?email=a@b.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lyon")

	// Client sans adresse → 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/address?email=x@y.com", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistToggle(t *testing.T) {
	r := setupUserTest(t)
	require.NoError(t, database.DB.Create(&models.User{Email: "a@b.com"}).Error)
	p := models.Product{Name: "Mug", Slug: "mug", PriceCents: 1000}
	require.NoError(t, database.DB.Create(&p).Error)

	body, _ := json.Marshal(gin.H{"email": "a@b.com", "product_id": p.ID})

	// Ajout
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/wishlist/contains?email=a@b.com&product_id=%d", p.ID), nil))
	assert.Contains(t, w.Body.String(), `"product_in_wishlist":true`)

	// Second appel : retrait
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/wishlist/contains?email=a@b.com&product_id=%d", p.ID), nil))
	assert.Contains(t, w.Body.String(), `"product_in_wishlist":false`)
}
