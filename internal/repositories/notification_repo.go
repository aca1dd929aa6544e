package repositories

import (
	"fmt"

	"galeri/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository defines data access for the notification log.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListForRecipient(userID string) ([]models.Notification, error)
	MarkRead(id, recipientID string) error
}

// GORMNotificationRepository is a GORM implementation of
// NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of
// GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{
		db: db,
	}
}

// Create appends one notification. The target is validated so a malformed
// tagged reference never lands in storage.
func (r *GORMNotificationRepository) Create(notification *models.Notification) error {
	if err := notification.Target.Validate(); err != nil {
		return fmt.Errorf("invalid notification target: %w", err)
	}
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListForRecipient returns a user's notifications, newest first.
func (r *GORMNotificationRepository) ListForRecipient(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("recipient_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

// MarkRead flags one of the recipient's notifications as read.
func (r *GORMNotificationRepository) MarkRead(id, recipientID string) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s not found", id)
	}
	return nil
}
