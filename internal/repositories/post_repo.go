package repositories

import (
	"galeri/internal/models"
)

// PostRepository defines the interface for artwork listing data access.
// Nothing here can flip IsSold; the sold transition happens exclusively
// inside the checkout transaction.
type PostRepository interface {
	GetAll() ([]models.Post, error)
	GetByID(id string) (*models.Post, error)
	GetByUser(userID string) ([]models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id string) error
}
