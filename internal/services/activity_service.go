package services

import (
	"galeri/internal/models"
	"galeri/internal/repositories"
)

// ActivityService exposes reads over the activity feed.
type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repositories.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// ListForUser returns a user's activity, newest first.
func (s *ActivityService) ListForUser(userID string) ([]models.UserActivity, error) {
	return s.activityRepo.ListForUser(userID)
}
