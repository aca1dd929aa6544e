package models

import (
	"fmt"
	"time"
)

// TargetKind tags what a notification points at. The original design used a
// generic polymorphic reference; here the kind is explicit and matched
// exhaustively.
type TargetKind string

const (
	TargetPost TargetKind = "post"
	TargetUser TargetKind = "user"
)

// NotificationTarget is a tagged reference: exactly one of PostID or UserID
// is set, according to Kind.
type NotificationTarget struct {
	Kind   TargetKind `json:"kind" gorm:"type:varchar(10)"`
	PostID string     `json:"post_id,omitempty" gorm:"type:varchar(36)"`
	UserID string     `json:"user_id,omitempty" gorm:"type:varchar(36)"`
}

// PostTarget builds a target pointing at a post.
func PostTarget(postID string) NotificationTarget {
	return NotificationTarget{Kind: TargetPost, PostID: postID}
}

// UserTarget builds a target pointing at a user.
func UserTarget(userID string) NotificationTarget {
	return NotificationTarget{Kind: TargetUser, UserID: userID}
}

// Validate rejects targets whose kind and ID fields disagree.
func (t NotificationTarget) Validate() error {
	switch t.Kind {
	case TargetPost:
		if t.PostID == "" || t.UserID != "" {
			return fmt.Errorf("post target must carry only a post ID")
		}
	case TargetUser:
		if t.UserID == "" || t.PostID != "" {
			return fmt.Errorf("user target must carry only a user ID")
		}
	default:
		return fmt.Errorf("unknown notification target kind %q", t.Kind)
	}
	return nil
}

// Notification tells a recipient that an actor did something involving the
// target.
type Notification struct {
	ID        string             `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Recipient string             `json:"recipient" gorm:"index;column:recipient_id;type:varchar(36)"`
	ActorID   string             `json:"actor_id" gorm:"type:varchar(36)"`
	Verb      string             `json:"verb" gorm:"type:varchar(255)"`
	Target    NotificationTarget `json:"target" gorm:"embedded;embeddedPrefix:target_"`
	IsRead    bool               `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time          `json:"created_at"`
}
