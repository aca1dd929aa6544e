package repositories

import (
	"galeri/internal/models"
)

// OrderRepository defines read access to the order ledger. Orders are
// written only by the checkout transaction; no update or delete exists.
type OrderRepository interface {
	ListForUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
}
