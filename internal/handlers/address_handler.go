package handlers

import (
	"log"

	"galeri/internal/middleware"
	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for shipping addresses.
type AddressHandler struct {
	addressService *services.AddressService
	validate       *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/addresses", h.HandleCreateAddress)
}

// HandleCreateAddress records a new shipping address for the caller.
func (h *AddressHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = ""
	address.UserID = middleware.UserID(c)

	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.addressService.CreateAddress(&address); err != nil {
		log.Printf("Error creating address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}
