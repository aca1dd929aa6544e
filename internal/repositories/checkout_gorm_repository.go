package repositories

import (
	"errors"
	"fmt"
	"time"

	"galeri/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCheckoutRepository is a GORM implementation of CheckoutRepository.
//
// The whole operation runs in one database transaction. Every post a cart
// line references is re-read under SELECT ... FOR UPDATE before its sold
// flag is trusted; a plain read-then-write would let two racing buyers both
// pass the check. Whichever transaction acquires the row locks first wins,
// every other one observes is_sold = true and aborts with
// ItemsUnavailableError, leaving its caller's cart untouched.
type GORMCheckoutRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db: db,
	}
}

// Checkout converts the user's cart into an order. On any failure the
// transaction rolls back completely: no order, no sold flags, cart intact.
func (r *GORMCheckoutRepository) Checkout(userID string) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return fmt.Errorf("failed to load cart for user %s: %w", userID, err)
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("created_at ASC").Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(items) == 0 {
			return models.ErrEmptyCart
		}

		postIDs := make([]string, 0, len(items))
		for _, item := range items {
			postIDs = append(postIDs, item.PostID)
		}

		// Lock every referenced artwork row before trusting any sold flag.
		// SQLite has no FOR UPDATE; there the database file lock serializes
		// writers instead.
		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var posts []models.Post
		if err := q.Where("id IN ?", postIDs).Find(&posts).Error; err != nil {
			return fmt.Errorf("failed to lock posts: %w", err)
		}

		postByID := make(map[string]models.Post, len(posts))
		for _, p := range posts {
			postByID[p.ID] = p
		}

		var unavailable []string
		for _, item := range items {
			post, ok := postByID[item.PostID]
			if !ok || post.IsSold {
				// Delisted posts count as unavailable too.
				unavailable = append(unavailable, item.PostID)
			}
		}
		if len(unavailable) > 0 {
			return &models.ItemsUnavailableError{PostIDs: unavailable}
		}

		newOrder := &models.Order{
			ID:        uuid.New().String(),
			UserID:    userID,
			Status:    models.OrderStatusCompleted,
			CreatedAt: time.Now(),
		}

		total := decimal.Zero
		for _, item := range items {
			post := postByID[item.PostID]
			// Price is snapshotted here, while the lock is held.
			newOrder.Items = append(newOrder.Items, models.OrderItem{
				ID:       uuid.New().String(),
				OrderID:  newOrder.ID,
				PostID:   post.ID,
				Price:    post.Price,
				Quantity: item.Quantity,
			})
			total = total.Add(post.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		newOrder.TotalAmount = total

		if err := tx.Create(newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		res := tx.Model(&models.Post{}).
			Where("id IN ? AND is_sold = ?", postIDs, false).
			Update("is_sold", true)
		if res.Error != nil {
			return fmt.Errorf("failed to mark posts sold: %w", res.Error)
		}
		if res.RowsAffected != int64(len(postIDs)) {
			// Cannot happen while the locks are held; abort rather than
			// commit a partial inventory transition.
			return fmt.Errorf("expected to mark %d posts sold, marked %d", len(postIDs), res.RowsAffected)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		order = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
