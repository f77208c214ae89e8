package checkout

import (
	"fmt"
	"testing"

	"vendora_back_end/internal/database"
	"vendora_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedCart(t *testing.T, db *gorm.DB, cartCode string, items map[string]struct {
	PriceCents int64
	Quantity   int
}) models.Cart {
	t.Helper()
	cart := models.Cart{CartCode: cartCode}
	require.NoError(t, db.Create(&cart).Error)

	for name, spec := range items {
		p := models.Product{Name: name, Slug: name, PriceCents: spec.PriceCents}
		require.NoError(t, db.Create(&p).Error)
		item := models.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: spec.Quantity}
		require.NoError(t, db.Create(&item).Error)
	}
	return cart
}

func TestFulfillCreatesOrderAndDeletesCart(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedCart(t, db, "CART001", map[string]struct {
		PriceCents int64
		Quantity   int
	}{
		"clavier": {PriceCents: 5000, Quantity: 1},
		"souris":  {PriceCents: 2500, Quantity: 2},
	})

	session := Session{
		ID:            "cs_live_123",
		AmountTotal:   10000,
		Currency:      "usd",
		CustomerEmail: "client@example.com",
	}
	require.NoError(t, svc.Fulfill(session, "CART001"))

	var order models.Order
	require.NoError(t, db.Preload("Items.Product").Where("stripe_checkout_id = ?", "cs_live_123").First(&order).Error)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, "client@example.com", order.CustomerEmail)
	assert.Len(t, order.Items, 2)

	quantities := map[string]int{}
	for _, item := range order.Items {
		quantities[item.Product.Name] = item.Quantity
	}
	assert.Equal(t, 1, quantities["clavier"])
	assert.Equal(t, 2, quantities["souris"])

	// Le panier et ses lignes n'existent plus
	var cartCount, itemCount int64
	db.Model(&models.Cart{}).Where("cart_code = ?", "CART001").Count(&cartCount)
	db.Model(&models.CartItem{}).Count(&itemCount)
	assert.Zero(t, cartCount)
	assert.Zero(t, itemCount)
}

func TestFulfillIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedCart(t, db, "CART002", map[string]struct {
		PriceCents int64
		Quantity   int
	}{
		"lampe": {PriceCents: 1500, Quantity: 1},
	})

	session := Session{ID: "cs_abc", AmountTotal: 1500, Currency: "usd", CustomerEmail: "a@b.com"}
	require.NoError(t, svc.Fulfill(session, "CART002"))

	// Seconde livraison du même événement : no-op, pas d'erreur
	require.NoError(t, svc.Fulfill(session, "CART002"))

	var count int64
	db.Model(&models.Order{}).Where("stripe_checkout_id = ?", "cs_abc").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFulfillCartNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	session := Session{ID: "cs_orphan", AmountTotal: 100, Currency: "usd", CustomerEmail: "a@b.com"}
	err := svc.Fulfill(session, "NOPE")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Aucune commande partielle
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestFulfillAmountConversion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedCart(t, db, "CART003", map[string]struct {
		PriceCents int64
		Quantity   int
	}{
		"tasse": {PriceCents: 2550, Quantity: 1},
	})

	session := Session{ID: "cs_amount", AmountTotal: 2550, Currency: "usd", CustomerEmail: "a@b.com"}
	require.NoError(t, svc.Fulfill(session, "CART003"))

	var order models.Order
	require.NoError(t, db.Where("stripe_checkout_id = ?", "cs_amount").First(&order).Error)
	assert.Equal(t, int64(2550), order.AmountCents)
	assert.Equal(t, 25.50, order.Amount())
}

func TestFulfillSnapshotsPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedCart(t, db, "CART004", map[string]struct {
		PriceCents int64
		Quantity   int
	}{
		"cahier": {PriceCents: 800, Quantity: 2},
	})

	session := Session{ID: "cs_snap", AmountTotal: 1600, Currency: "usd", CustomerEmail: "a@b.com"}
	require.NoError(t, svc.Fulfill(session, "CART004"))

	// Un changement de prix ultérieur ne touche pas la commande
	require.NoError(t, db.Model(&models.Product{}).Where("name = ?", "cahier").Update("price_cents", 9999).Error)

	var item models.OrderItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, int64(800), item.PriceCents)
}

func TestFulfillTestManualScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedCart(t, db, "ABC1234567", map[string]struct {
		PriceCents int64
		Quantity   int
	}{
		"Mug": {PriceCents: 1000, Quantity: 3},
	})

	require.NoError(t, svc.FulfillTest("ABC1234567", "a@b.com"))

	var order models.Order
	require.NoError(t, db.Preload("Items.Product").
		Where("stripe_checkout_id = ?", "cs_test_manual_ABC1234567").
		First(&order).Error)

	assert.Equal(t, 30.00, order.Amount())
	assert.Equal(t, "usd", order.Currency)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, "a@b.com", order.CustomerEmail)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mug", order.Items[0].Product.Name)
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestFulfillTestCartNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	err := svc.FulfillTest("INCONNU", "a@b.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
