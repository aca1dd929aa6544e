package handlers

import (
	"log"
	"strings"

	"galeri/internal/middleware"
	"galeri/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FeedHandler handles HTTP reads over the activity feed and the
// notification log.
type FeedHandler struct {
	activityService     *services.ActivityService
	notificationService *services.NotificationService
	authService         *services.AuthService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(
	activityService *services.ActivityService,
	notificationService *services.NotificationService,
	authService *services.AuthService,
) *FeedHandler {
	return &FeedHandler{
		activityService:     activityService,
		notificationService: notificationService,
		authService:         authService,
	}
}

// RegisterRoutes registers the feed routes with the Fiber app.
func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/activity", h.HandleMyActivity)
	router.Get("/activity/:username", h.HandleUserActivity)
	router.Get("/notifications", h.HandleListNotifications)
	router.Post("/notifications/:id/read", h.HandleMarkRead)
}

// HandleMyActivity returns the caller's own activity feed.
func (h *FeedHandler) HandleMyActivity(c *fiber.Ctx) error {
	activities, err := h.activityService.ListForUser(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing activity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve activity",
			"error":   err.Error(),
		})
	}
	return c.JSON(activities)
}

// HandleUserActivity returns another user's activity feed.
func (h *FeedHandler) HandleUserActivity(c *fiber.Ctx) error {
	user, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	activities, err := h.activityService.ListForUser(user.ID)
	if err != nil {
		log.Printf("Error listing activity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve activity",
			"error":   err.Error(),
		})
	}
	return c.JSON(activities)
}

// HandleListNotifications returns the caller's notifications.
func (h *FeedHandler) HandleListNotifications(c *fiber.Ctx) error {
	notifications, err := h.notificationService.ListForUser(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve notifications",
			"error":   err.Error(),
		})
	}
	return c.JSON(notifications)
}

// HandleMarkRead flags one of the caller's notifications as read.
func (h *FeedHandler) HandleMarkRead(c *fiber.Ctx) error {
	if err := h.notificationService.MarkRead(middleware.UserID(c), c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		log.Printf("Error marking notification read: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update notification",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}
