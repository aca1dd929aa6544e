package services

import (
	"fmt"
	"log"

	"galeri/internal/models"
	"galeri/internal/repositories"
)

// SocialService handles likes, saves, comments and follows. After each
// successful write it explicitly records the activity entry and, where
// someone else should hear about it, a notification. Those side writes are
// best-effort: a failed feed insert never fails the action itself.
type SocialService struct {
	socialRepo       repositories.SocialRepository
	postRepo         repositories.PostRepository
	userRepo         repositories.UserRepository
	activityRepo     repositories.ActivityRepository
	notificationRepo repositories.NotificationRepository
}

// NewSocialService creates a new SocialService.
func NewSocialService(
	socialRepo repositories.SocialRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	notificationRepo repositories.NotificationRepository,
) *SocialService {
	return &SocialService{
		socialRepo:       socialRepo,
		postRepo:         postRepo,
		userRepo:         userRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
	}
}

// LikePost likes a post on behalf of the user. Liking twice is a no-op.
func (s *SocialService) LikePost(userID, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if err := s.socialRepo.Like(&models.LikePost{PostID: postID, UserID: userID}); err != nil {
		return err
	}
	s.recordActivity(&models.UserActivity{
		UserID:       userID,
		ActionType:   models.ActionLike,
		TargetPostID: postID,
		Description:  fmt.Sprintf("Liked post '%s'", post.Title),
	})
	s.notify(post.UserID, userID, "liked your post", models.PostTarget(postID))
	return nil
}

// UnlikePost removes a like; no-op if absent.
func (s *SocialService) UnlikePost(userID, postID string) error {
	return s.socialRepo.Unlike(userID, postID)
}

// SavePost bookmarks a post. Saving twice is a no-op.
func (s *SocialService) SavePost(userID, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if err := s.socialRepo.Save(&models.SavePost{PostID: postID, UserID: userID}); err != nil {
		return err
	}
	s.recordActivity(&models.UserActivity{
		UserID:       userID,
		ActionType:   models.ActionSave,
		TargetPostID: postID,
		Description:  fmt.Sprintf("Saved post '%s'", post.Title),
	})
	return nil
}

// UnsavePost removes a bookmark; no-op if absent.
func (s *SocialService) UnsavePost(userID, postID string) error {
	return s.socialRepo.Unsave(userID, postID)
}

// ListSavedPosts returns the user's bookmarks.
func (s *SocialService) ListSavedPosts(userID string) ([]models.SavePost, error) {
	return s.socialRepo.ListSaved(userID)
}

// CommentOnPost adds a comment and tells the post owner.
func (s *SocialService) CommentOnPost(comment *models.Comment) error {
	post, err := s.postRepo.GetByID(comment.PostID)
	if err != nil {
		return err
	}
	if err := s.socialRepo.CreateComment(comment); err != nil {
		return err
	}
	preview := comment.Content
	if len(preview) > 50 {
		preview = preview[:50]
	}
	s.recordActivity(&models.UserActivity{
		UserID:       comment.UserID,
		ActionType:   models.ActionComment,
		TargetPostID: comment.PostID,
		Description:  fmt.Sprintf("Commented: %s", preview),
	})
	s.notify(post.UserID, comment.UserID, "commented on your post", models.PostTarget(comment.PostID))
	return nil
}

// ListComments returns a post's comments, oldest first.
func (s *SocialService) ListComments(postID string) ([]models.Comment, error) {
	return s.socialRepo.ListComments(postID)
}

// DeleteComment removes a comment owned by the user.
func (s *SocialService) DeleteComment(userID, commentID string) error {
	comment, err := s.socialRepo.GetComment(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return fmt.Errorf("user %s does not own comment %s", userID, commentID)
	}
	return s.socialRepo.DeleteComment(commentID)
}

// FollowUser makes followerID follow followingID. Following twice is a
// no-op; following yourself is an error.
func (s *SocialService) FollowUser(followerID, followingID string) error {
	if followerID == followingID {
		return fmt.Errorf("users cannot follow themselves")
	}
	followed, err := s.userRepo.GetByID(followingID)
	if err != nil {
		return err
	}
	if err := s.socialRepo.Follow(&models.Follow{FollowerID: followerID, FollowingID: followingID}); err != nil {
		return err
	}
	s.recordActivity(&models.UserActivity{
		UserID:       followerID,
		ActionType:   models.ActionFollow,
		TargetUserID: followingID,
		Description:  fmt.Sprintf("Followed user %s", followed.Username),
	})
	s.notify(followingID, followerID, "started following you", models.UserTarget(followerID))
	return nil
}

// UnfollowUser removes the follow edge; no-op if absent.
func (s *SocialService) UnfollowUser(followerID, followingID string) error {
	return s.socialRepo.Unfollow(followerID, followingID)
}

// IsFollowing reports whether followerID follows followingID.
func (s *SocialService) IsFollowing(followerID, followingID string) (bool, error) {
	return s.socialRepo.IsFollowing(followerID, followingID)
}

// ListFollowers returns the users following the given user.
func (s *SocialService) ListFollowers(userID string) ([]models.User, error) {
	return s.socialRepo.ListFollowers(userID)
}

// ListFollowing returns the users the given user follows.
func (s *SocialService) ListFollowing(userID string) ([]models.User, error) {
	return s.socialRepo.ListFollowing(userID)
}

func (s *SocialService) recordActivity(activity *models.UserActivity) {
	if s.activityRepo == nil {
		return
	}
	if err := s.activityRepo.Record(activity); err != nil {
		log.Printf("Warning: failed to record %s activity for user %s: %v", activity.ActionType, activity.UserID, err)
	}
}

// notify writes a notification unless the actor is notifying themselves.
func (s *SocialService) notify(recipientID, actorID, verb string, target models.NotificationTarget) {
	if s.notificationRepo == nil || recipientID == actorID {
		return
	}
	err := s.notificationRepo.Create(&models.Notification{
		Recipient: recipientID,
		ActorID:   actorID,
		Verb:      verb,
		Target:    target,
	})
	if err != nil {
		log.Printf("Warning: failed to notify user %s: %v", recipientID, err)
	}
}
