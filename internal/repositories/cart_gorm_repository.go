package repositories

import (
	"errors"
	"fmt"

	"galeri/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// AddItem stages an artwork in the user's cart, creating the cart lazily.
// Re-adding the same artwork increments the existing line's quantity.
func (r *GORMCartRepository) AddItem(userID, postID string, quantity int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPostNotFound
			}
			return fmt.Errorf("failed to load post %s: %w", postID, err)
		}
		if post.IsSold {
			return models.ErrPostSold
		}

		var cart models.Cart
		err := tx.Where(models.Cart{UserID: userID}).
			Attrs(models.Cart{ID: uuid.New().String()}).
			FirstOrCreate(&cart).Error
		if err != nil {
			return fmt.Errorf("failed to get or create cart for user %s: %w", userID, err)
		}

		var item models.CartItem
		err = tx.First(&item, "cart_id = ? AND post_id = ?", cart.ID, postID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				ID:       uuid.New().String(),
				CartID:   cart.ID,
				PostID:   postID,
				Quantity: quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load cart item: %w", err)
		}

		item.Quantity += quantity
		if err := tx.Save(&item).Error; err != nil {
			return fmt.Errorf("failed to update cart item quantity: %w", err)
		}
		return nil
	})
}

// RemoveItem deletes the cart line for the given artwork. Removing an
// artwork that is not in the cart is a no-op, not an error.
func (r *GORMCartRepository) RemoveItem(userID, postID string) error {
	var cart models.Cart
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}
	if err := r.db.Where("cart_id = ? AND post_id = ?", cart.ID, postID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// View returns the cart lines with a live snapshot of each artwork, in the
// order they were added. A user with no cart sees an empty cart.
func (r *GORMCartRepository) View(userID string) ([]models.CartLine, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartLine{}, nil
		}
		return nil, fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}

	var items []models.CartItem
	if err := r.db.Preload("Post").Where("cart_id = ?", cart.ID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.CartLine{
			Post:     item.Post.Snapshot(),
			Quantity: item.Quantity,
		})
	}
	return lines, nil
}
