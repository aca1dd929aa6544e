package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"galeri/internal/middleware"
	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PostHandler handles HTTP requests for artwork listings.
type PostHandler struct {
	postService *services.PostService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, authService *services.AuthService) *PostHandler {
	return &PostHandler{
		postService: postService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Put("/:id", h.HandleUpdatePost)
	postRoutes.Delete("/:id", h.HandleDeletePost)
	router.Get("/users/:username/posts", h.HandleGetUserPosts)
}

// PostRequest represents the request body for creating or editing a post.
type PostRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"omitempty,oneof=painting sculpture photography digital other"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Price       decimal.Decimal `json:"price"`
}

// HandleGetPosts retrieves all listings.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.postService.GetAllPosts()
	if err != nil {
		log.Printf("Error getting all posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single listing.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	postID := c.Params("id")
	post, err := h.postService.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Post with ID %s not found", postID),
			})
		}
		log.Printf("Error getting post by ID %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleGetUserPosts retrieves all listings published by a user.
func (h *PostHandler) HandleGetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	user, err := h.authService.GetUserByUsername(username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("User %s not found", username),
		})
	}
	posts, err := h.postService.GetPostsByUser(user.ID)
	if err != nil {
		log.Printf("Error getting posts for user %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleCreatePost publishes a new listing owned by the caller.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	post := &models.Post{
		UserID:      middleware.UserID(c),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}
	if err := h.postService.CreatePost(post); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create post",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost edits a listing owned by the caller.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	post := &models.Post{
		ID:          c.Params("id"),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}
	if err := h.postService.UpdatePost(middleware.UserID(c), post); err != nil {
		return postMutationError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
	})
}

// HandleDeletePost removes a listing owned by the caller.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	if err := h.postService.DeletePost(middleware.UserID(c), c.Params("id")); err != nil {
		return postMutationError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

func postMutationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrPostNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}
	if strings.Contains(err.Error(), "does not own") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not own this post",
		})
	}
	log.Printf("Error mutating post: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not modify post",
		"error":   err.Error(),
	})
}
