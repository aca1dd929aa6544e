package models

import "time"

// Action types recorded in the activity feed.
const (
	ActionPost    = "post"
	ActionComment = "comment"
	ActionLike    = "like"
	ActionSave    = "save"
	ActionFollow  = "follow"
	ActionOrder   = "order"
)

// UserActivity is one entry in a user's activity feed. Entries are written
// by explicit service calls after the action they describe has been
// persisted, never by save hooks.
type UserActivity struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ActionType   string    `json:"action_type" gorm:"type:varchar(20)"`
	TargetPostID string    `json:"target_post_id,omitempty" gorm:"type:varchar(36)"`
	TargetUserID string    `json:"target_user_id,omitempty" gorm:"type:varchar(36)"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
