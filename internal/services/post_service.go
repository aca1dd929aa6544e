package services

import (
	"fmt"
	"log"

	"galeri/internal/models"
	"galeri/internal/repositories"
)

// PostService handles business logic for artwork listings.
type PostService struct {
	postRepo     repositories.PostRepository
	activityRepo repositories.ActivityRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, activityRepo repositories.ActivityRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		activityRepo: activityRepo,
	}
}

// GetAllPosts retrieves all listings.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostByID retrieves a single listing.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// GetPostsByUser retrieves all listings by one user.
func (s *PostService) GetPostsByUser(userID string) ([]models.Post, error) {
	return s.postRepo.GetByUser(userID)
}

// CreatePost publishes a new listing and records the activity. Listings are
// born unsold; the sold flag is owned by the checkout transaction.
func (s *PostService) CreatePost(post *models.Post) error {
	post.IsSold = false
	if post.Category == "" {
		post.Category = models.CategoryOther
	}
	if err := s.postRepo.Create(post); err != nil {
		return err
	}
	s.recordActivity(&models.UserActivity{
		UserID:       post.UserID,
		ActionType:   models.ActionPost,
		TargetPostID: post.ID,
		Description:  fmt.Sprintf("Created post '%s'", post.Title),
	})
	return nil
}

// UpdatePost edits a listing. Only the owner may edit, and a sold artwork's
// price is frozen on its order line anyway.
func (s *PostService) UpdatePost(userID string, post *models.Post) error {
	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("user %s does not own post %s", userID, post.ID)
	}
	return s.postRepo.Update(post)
}

// DeletePost removes a listing owned by the user.
func (s *PostService) DeletePost(userID, postID string) error {
	existing, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("user %s does not own post %s", userID, postID)
	}
	return s.postRepo.Delete(postID)
}

// recordActivity appends to the feed after the owning write succeeded.
// Feed failures are logged, never propagated.
func (s *PostService) recordActivity(activity *models.UserActivity) {
	if s.activityRepo == nil {
		return
	}
	if err := s.activityRepo.Record(activity); err != nil {
		log.Printf("Warning: failed to record %s activity for user %s: %v", activity.ActionType, activity.UserID, err)
	}
}
