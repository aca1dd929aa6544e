package handlers

import (
	"errors"
	"log"
	"strings"

	"galeri/internal/middleware"
	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SocialHandler handles HTTP requests for likes, saves, comments and
// follows.
type SocialHandler struct {
	socialService *services.SocialService
	authService   *services.AuthService
	validate      *validator.Validate
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(socialService *services.SocialService, authService *services.AuthService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
		authService:   authService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the social routes with the Fiber app.
func (h *SocialHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/posts/:id/like", h.HandleLike)
	router.Delete("/posts/:id/like", h.HandleUnlike)
	router.Post("/posts/:id/save", h.HandleSave)
	router.Delete("/posts/:id/save", h.HandleUnsave)
	router.Get("/saved-posts", h.HandleListSaved)

	router.Post("/posts/:id/comments", h.HandleCreateComment)
	router.Get("/posts/:id/comments", h.HandleListComments)
	router.Delete("/comments/:id", h.HandleDeleteComment)

	router.Post("/users/:username/follow", h.HandleFollow)
	router.Delete("/users/:username/follow", h.HandleUnfollow)
	router.Get("/users/:username/follow", h.HandleFollowStatus)
	router.Get("/users/:username/followers", h.HandleListFollowers)
	router.Get("/users/:username/following", h.HandleListFollowing)
}

// HandleLike likes a post.
func (h *SocialHandler) HandleLike(c *fiber.Ctx) error {
	if err := h.socialService.LikePost(middleware.UserID(c), c.Params("id")); err != nil {
		return socialError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post liked",
	})
}

// HandleUnlike removes a like.
func (h *SocialHandler) HandleUnlike(c *fiber.Ctx) error {
	if err := h.socialService.UnlikePost(middleware.UserID(c), c.Params("id")); err != nil {
		return socialError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post unliked",
	})
}

// HandleSave bookmarks a post.
func (h *SocialHandler) HandleSave(c *fiber.Ctx) error {
	if err := h.socialService.SavePost(middleware.UserID(c), c.Params("id")); err != nil {
		return socialError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post saved",
	})
}

// HandleUnsave removes a bookmark.
func (h *SocialHandler) HandleUnsave(c *fiber.Ctx) error {
	if err := h.socialService.UnsavePost(middleware.UserID(c), c.Params("id")); err != nil {
		return socialError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post unsaved",
	})
}

// HandleListSaved returns the caller's bookmarks.
func (h *SocialHandler) HandleListSaved(c *fiber.Ctx) error {
	saves, err := h.socialService.ListSavedPosts(middleware.UserID(c))
	if err != nil {
		return socialError(c, err)
	}
	return c.JSON(saves)
}

// CommentRequest represents the request body for commenting.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// HandleCreateComment adds a comment to a post.
func (h *SocialHandler) HandleCreateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	comment := &models.Comment{
		PostID:  c.Params("id"),
		UserID:  middleware.UserID(c),
		Content: req.Content,
	}
	if err := h.socialService.CommentOnPost(comment); err != nil {
		return socialError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleListComments returns a post's comments.
func (h *SocialHandler) HandleListComments(c *fiber.Ctx) error {
	comments, err := h.socialService.ListComments(c.Params("id"))
	if err != nil {
		return socialError(c, err)
	}
	return c.JSON(comments)
}

// HandleDeleteComment removes a comment owned by the caller.
func (h *SocialHandler) HandleDeleteComment(c *fiber.Ctx) error {
	if err := h.socialService.DeleteComment(middleware.UserID(c), c.Params("id")); err != nil {
		return socialError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Comment deleted",
	})
}

// HandleFollow makes the caller follow the named user.
func (h *SocialHandler) HandleFollow(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return socialError(c, err)
	}
	if err := h.socialService.FollowUser(middleware.UserID(c), target.ID); err != nil {
		return socialError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Now following " + target.Username,
	})
}

// HandleUnfollow makes the caller unfollow the named user.
func (h *SocialHandler) HandleUnfollow(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return socialError(c, err)
	}
	if err := h.socialService.UnfollowUser(middleware.UserID(c), target.ID); err != nil {
		return socialError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Unfollowed " + target.Username,
	})
}

// HandleFollowStatus reports whether the caller follows the named user.
func (h *SocialHandler) HandleFollowStatus(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return socialError(c, err)
	}
	following, err := h.socialService.IsFollowing(middleware.UserID(c), target.ID)
	if err != nil {
		return socialError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}

// HandleListFollowers returns the named user's followers.
func (h *SocialHandler) HandleListFollowers(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return socialError(c, err)
	}
	users, err := h.socialService.ListFollowers(target.ID)
	if err != nil {
		return socialError(c, err)
	}
	return c.JSON(users)
}

// HandleListFollowing returns who the named user follows.
func (h *SocialHandler) HandleListFollowing(c *fiber.Ctx) error {
	target, err := h.authService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return socialError(c, err)
	}
	users, err := h.socialService.ListFollowing(target.ID)
	if err != nil {
		return socialError(c, err)
	}
	return c.JSON(users)
}

func socialError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrPostNotFound), errors.Is(err, models.ErrUserNotFound),
		strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case strings.Contains(err.Error(), "does not own"),
		strings.Contains(err.Error(), "cannot follow themselves"):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.Printf("Social action failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Action failed",
			"error":   err.Error(),
		})
	}
}
