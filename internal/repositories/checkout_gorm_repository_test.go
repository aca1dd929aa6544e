package repositories_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"galeri/internal/models"
	"galeri/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database and migrates the
// commerce tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, price string) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:     uuid.New().String(),
		UserID: uuid.New().String(),
		Title:  "Sunset No. 7",
		Price:  decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestCheckoutTwoBuyersScenario(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	post := seedPost(t, db, "100.00")
	buyer1 := uuid.New().String()
	buyer2 := uuid.New().String()

	require.NoError(t, cartRepo.AddItem(buyer1, post.ID, 1))
	require.NoError(t, cartRepo.AddItem(buyer2, post.ID, 1))

	// Buyer 1 wins the sale.
	order, err := checkoutRepo.Checkout(buyer1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("100.00")),
		"expected total 100.00, got %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, post.ID, order.Items[0].PostID)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.True(t, reloaded.IsSold)

	// Buyer 1's cart is cleared.
	lines, err := cartRepo.View(buyer1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Buyer 2 is refused and keeps their cart.
	_, err = checkoutRepo.Checkout(buyer2)
	var unavailable *models.ItemsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{post.ID}, unavailable.PostIDs)

	lines, err = cartRepo.View(buyer2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, post.ID, lines[0].Post.ID)

	// Exactly one order references the artwork.
	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	// No cart at all.
	_, err := checkoutRepo.Checkout(uuid.New().String())
	assert.ErrorIs(t, err, models.ErrCartNotFound)

	// Cart exists but has no items left.
	post := seedPost(t, db, "50.00")
	buyer := uuid.New().String()
	require.NoError(t, cartRepo.AddItem(buyer, post.ID, 1))
	require.NoError(t, cartRepo.RemoveItem(buyer, post.ID))

	_, err = checkoutRepo.Checkout(buyer)
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCheckoutPriceSnapshotAtCommit(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	post := seedPost(t, db, "100.00")
	buyer := uuid.New().String()
	require.NoError(t, cartRepo.AddItem(buyer, post.ID, 1))

	// Reprice after the add: the order must record the price at the commit
	// instant, not the price at cart-add time.
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).
		Update("price", decimal.RequireFromString("150.00")).Error)

	order, err := checkoutRepo.Checkout(buyer)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("150.00")),
		"expected snapshot price 150.00, got %s", order.Items[0].Price)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("150.00")))
}

func TestCheckoutQuantityCountsTowardTotal(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	post := seedPost(t, db, "40.00")
	buyer := uuid.New().String()
	// Re-adding increments the single line's count.
	require.NoError(t, cartRepo.AddItem(buyer, post.ID, 1))
	require.NoError(t, cartRepo.AddItem(buyer, post.ID, 2))

	order, err := checkoutRepo.Checkout(buyer)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("120.00")),
		"expected total 120.00, got %s", order.TotalAmount)
}

func TestCheckoutRollsBackOnStorageFailure(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	post := seedPost(t, db, "75.00")
	buyer := uuid.New().String()
	require.NoError(t, cartRepo.AddItem(buyer, post.ID, 1))

	// Sabotage the order line table so the transaction fails mid-flight.
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	_, err := checkoutRepo.Checkout(buyer)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrEmptyCart)

	// Nothing changed: no order, artwork still available, cart intact.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.False(t, reloaded.IsSold)

	lines, viewErr := cartRepo.View(buyer)
	require.NoError(t, viewErr)
	assert.Len(t, lines, 1)
}

func TestCheckoutExactlyOnceUnderConcurrency(t *testing.T) {
	db := newTestDB(t)

	// SQLite allows a single writer; funnel all goroutines through one
	// connection so the racing transactions queue instead of erroring.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	post := seedPost(t, db, "100.00")

	const buyers = 8
	buyerIDs := make([]string, buyers)
	for i := range buyerIDs {
		buyerIDs[i] = uuid.New().String()
		require.NoError(t, cartRepo.AddItem(buyerIDs[i], post.ID, 1))
	}

	var wg sync.WaitGroup
	results := make(chan error, buyers)
	for _, buyerID := range buyerIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := checkoutRepo.Checkout(id)
			results <- err
		}(buyerID)
	}
	wg.Wait()
	close(results)

	var wins, refusals int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		var unavailable *models.ItemsUnavailableError
		if errors.As(err, &unavailable) {
			refusals++
			assert.Equal(t, []string{post.ID}, unavailable.PostIDs)
		} else {
			t.Errorf("unexpected checkout error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one buyer must win the artwork")
	assert.Equal(t, buyers-1, refusals)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
