package repositories

import (
	"galeri/internal/models"
)

// CheckoutRepository executes the atomic sale: cart lines become an order,
// the referenced artworks flip to sold, and the cart is cleared, all in one
// all-or-nothing unit. Implementations must guarantee that for any artwork
// at most one concurrent Checkout ever commits a sale of it.
type CheckoutRepository interface {
	Checkout(userID string) (*models.Order, error)
}
