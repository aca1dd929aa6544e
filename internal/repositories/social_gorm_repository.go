package repositories

import (
	"errors"
	"fmt"

	"galeri/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSocialRepository is a GORM implementation of SocialRepository.
type GORMSocialRepository struct {
	db *gorm.DB
}

// NewGORMSocialRepository creates a new instance of GORMSocialRepository.
func NewGORMSocialRepository(db *gorm.DB) *GORMSocialRepository {
	return &GORMSocialRepository{
		db: db,
	}
}

// Like records a like. Liking the same post twice is a no-op; the
// (post, user) pair is unique.
func (r *GORMSocialRepository) Like(like *models.LikePost) error {
	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	return nil
}

// Unlike removes a like; silent no-op if absent.
func (r *GORMSocialRepository) Unlike(userID, postID string) error {
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.LikePost{}).Error; err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	return nil
}

// Save bookmarks a post; re-saving is a no-op.
func (r *GORMSocialRepository) Save(save *models.SavePost) error {
	if save.ID == "" {
		save.ID = uuid.New().String()
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(save).Error; err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

// Unsave removes a bookmark; silent no-op if absent.
func (r *GORMSocialRepository) Unsave(userID, postID string) error {
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.SavePost{}).Error; err != nil {
		return fmt.Errorf("failed to unsave post: %w", err)
	}
	return nil
}

// ListSaved returns the user's bookmarks, newest first.
func (r *GORMSocialRepository) ListSaved(userID string) ([]models.SavePost, error) {
	var saves []models.SavePost
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saves).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved posts: %w", err)
	}
	return saves, nil
}

// CreateComment adds a comment to a post.
func (r *GORMSocialRepository) CreateComment(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments returns a post's comments, oldest first.
func (r *GORMSocialRepository) ListComments(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// GetComment retrieves a single comment.
func (r *GORMSocialRepository) GetComment(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// DeleteComment removes a comment.
func (r *GORMSocialRepository) DeleteComment(id string) error {
	res := r.db.Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s not found", id)
	}
	return nil
}

// Follow records a follow edge; following twice is a no-op.
func (r *GORMSocialRepository) Follow(follow *models.Follow) error {
	if follow.ID == "" {
		follow.ID = uuid.New().String()
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
		return fmt.Errorf("failed to follow user: %w", err)
	}
	return nil
}

// Unfollow removes a follow edge; silent no-op if absent.
func (r *GORMSocialRepository) Unfollow(followerID, followingID string) error {
	if err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{}).Error; err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	return nil
}

// IsFollowing reports whether the follow edge exists.
func (r *GORMSocialRepository) IsFollowing(followerID, followingID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

// ListFollowers returns the users following the given user.
func (r *GORMSocialRepository) ListFollowers(userID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, nil
}

// ListFollowing returns the users the given user follows.
func (r *GORMSocialRepository) ListFollowing(userID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return users, nil
}
