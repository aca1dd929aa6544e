package repositories

import (
	"errors"
	"fmt"

	"galeri/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// GetAll retrieves all artwork listings, newest first.
func (r *GORMPostRepository) GetAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a single listing by its ID.
func (r *GORMPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}
	return &post, nil
}

// GetByUser retrieves all listings published by one user, newest first.
func (r *GORMPostRepository) GetByUser(userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get posts for user %s: %w", userID, err)
	}
	return posts, nil
}

// Create creates a new listing.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update updates the editable fields of a listing. IsSold is deliberately
// not in the column list.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("title", "category", "description", "image_url", "price").
		Updates(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

// Delete removes a listing by its ID.
func (r *GORMPostRepository) Delete(id string) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}
