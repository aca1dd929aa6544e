package models

import "time"

// LikePost marks a post as liked by a user. Unique per (post, user).
type LikePost struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex:idx_like_post_user;type:varchar(36)" validate:"required,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_like_post_user;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}

// SavePost bookmarks a post for a user. Unique per (post, user).
type SavePost struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex:idx_save_post_user;type:varchar(36)" validate:"required,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_save_post_user;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a user's comment on a post.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Content   string    `json:"content" gorm:"type:text" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Follow records that Follower follows Following. Unique per pair.
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FollowerID  string    `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair;type:varchar(36)"`
	FollowingID string    `json:"following_id" gorm:"uniqueIndex:idx_follow_pair;type:varchar(36)" validate:"required,uuid"`
	CreatedAt   time.Time `json:"created_at"`
}
