package repositories

import (
	"fmt"

	"galeri/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository defines data access for the activity feed.
type ActivityRepository interface {
	Record(activity *models.UserActivity) error
	ListForUser(userID string) ([]models.UserActivity, error)
}

// GORMActivityRepository is a GORM implementation of ActivityRepository.
type GORMActivityRepository struct {
	db *gorm.DB
}

// NewGORMActivityRepository creates a new instance of GORMActivityRepository.
func NewGORMActivityRepository(db *gorm.DB) *GORMActivityRepository {
	return &GORMActivityRepository{
		db: db,
	}
}

// Record appends one activity entry.
func (r *GORMActivityRepository) Record(activity *models.UserActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListForUser returns a user's activity, newest first.
func (r *GORMActivityRepository) ListForUser(userID string) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity for user %s: %w", userID, err)
	}
	return activities, nil
}
