package repositories

import (
	"galeri/internal/models"
)

// CartRepository defines the interface for cart data access. The sold check
// in AddItem is best effort only; the checkout transaction is the authority.
// Clearing a cart happens inside that transaction, so no Clear is exposed
// here.
type CartRepository interface {
	AddItem(userID, postID string, quantity int) error
	RemoveItem(userID, postID string) error
	View(userID string) ([]models.CartLine, error)
}
