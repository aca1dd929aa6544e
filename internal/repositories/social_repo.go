package repositories

import (
	"galeri/internal/models"
)

// SocialRepository defines data access for likes, saves, comments and
// follows. All of this is thin CRUD scoped to a single user per row; none
// of it needs cross-request coordination.
type SocialRepository interface {
	Like(like *models.LikePost) error
	Unlike(userID, postID string) error
	Save(save *models.SavePost) error
	Unsave(userID, postID string) error
	ListSaved(userID string) ([]models.SavePost, error)

	CreateComment(comment *models.Comment) error
	ListComments(postID string) ([]models.Comment, error)
	GetComment(id string) (*models.Comment, error)
	DeleteComment(id string) error

	Follow(follow *models.Follow) error
	Unfollow(followerID, followingID string) error
	IsFollowing(followerID, followingID string) (bool, error)
	ListFollowers(userID string) ([]models.User, error)
	ListFollowing(userID string) ([]models.User, error)
}
