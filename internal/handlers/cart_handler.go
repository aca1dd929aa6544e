package handlers

import (
	"errors"
	"log"

	"galeri/internal/middleware"
	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart and the checkout.
type CartHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, checkoutService *services.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the cart and checkout routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:postID", h.HandleRemoveItem)
	router.Post("/checkout", h.HandleCheckout)
}

// AddItemRequest represents the request body for adding to the cart.
type AddItemRequest struct {
	PostID   string `json:"post_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleAddItem stages an artwork in the caller's cart and returns the
// updated cart snapshot.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	userID := middleware.UserID(c)
	if err := h.cartService.AddItem(userID, req.PostID, req.Quantity); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Artwork not found",
			})
		}
		if errors.Is(err, models.ErrPostSold) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Artwork is already sold",
			})
		}
		log.Printf("Error adding item to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	lines, err := h.cartService.ViewCart(userID)
	if err != nil {
		log.Printf("Error reloading cart after add: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cart": lines,
	})
}

// HandleViewCart returns the caller's cart lines.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	lines, err := h.cartService.ViewCart(middleware.UserID(c))
	if err != nil {
		log.Printf("Error viewing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"cart": lines,
	})
}

// HandleRemoveItem drops an artwork from the caller's cart. Removing an
// absent artwork still answers 200.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.cartService.RemoveItem(middleware.UserID(c), c.Params("postID")); err != nil {
		log.Printf("Error removing item from cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Removed from cart",
	})
}

// HandleCheckout runs the checkout protocol for the caller's cart. Failures
// are typed: empty cart and gone items are the caller's to fix, anything
// else is a retryable storage failure (the transaction rolled back whole).
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.checkoutService.Checkout(middleware.UserID(c))
	if err != nil {
		var unavailable *models.ItemsUnavailableError
		switch {
		case errors.Is(err, models.ErrCartNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart not found",
			})
		case errors.Is(err, models.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		case errors.As(err, &unavailable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":  "Items no longer available",
				"post_ids": unavailable.PostIDs,
			})
		default:
			log.Printf("Error during checkout: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Checkout failed, no changes were made; please retry",
				"error":   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order": order,
	})
}
