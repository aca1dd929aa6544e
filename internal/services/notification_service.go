package services

import (
	"encoding/json"
	"fmt"
	"log"

	"galeri/internal/models"
	"galeri/internal/repositories"
)

// NotificationService exposes the notification log and consumes order.placed
// events to tell sellers their artwork sold. It sits strictly downstream of
// the checkout protocol; nothing here can affect a committed order.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	postRepo         repositories.PostRepository
	activityRepo     repositories.ActivityRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	postRepo repositories.PostRepository,
	activityRepo repositories.ActivityRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		postRepo:         postRepo,
		activityRepo:     activityRepo,
	}
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.notificationRepo.ListForRecipient(userID)
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(userID, notificationID string) error {
	return s.notificationRepo.MarkRead(notificationID, userID)
}

// HandleOrderPlaced processes one order.placed event: it records the buyer's
// purchase in their activity feed and notifies the seller of each sold
// artwork. Returning an error nacks the delivery for redelivery.
func (s *NotificationService) HandleOrderPlaced(body []byte) error {
	var event models.OrderPlacedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode order.placed event: %w", err)
	}

	if err := s.activityRepo.Record(&models.UserActivity{
		UserID:      event.BuyerID,
		ActionType:  models.ActionOrder,
		Description: fmt.Sprintf("Purchased %d artwork(s), total %s", len(event.PostIDs), event.Total),
	}); err != nil {
		log.Printf("Warning: failed to record purchase activity for order %s: %v", event.OrderID, err)
	}

	for _, postID := range event.PostIDs {
		post, err := s.postRepo.GetByID(postID)
		if err != nil {
			log.Printf("Warning: order %s references unknown post %s: %v", event.OrderID, postID, err)
			continue
		}
		err = s.notificationRepo.Create(&models.Notification{
			Recipient: post.UserID,
			ActorID:   event.BuyerID,
			Verb:      fmt.Sprintf("purchased '%s'", post.Title),
			Target:    models.PostTarget(postID),
		})
		if err != nil {
			return fmt.Errorf("failed to notify seller %s for order %s: %w", post.UserID, event.OrderID, err)
		}
	}
	return nil
}
