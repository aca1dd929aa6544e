package services

import (
	"fmt"

	"galeri/internal/models"
	"galeri/internal/repositories"
)

// CartService handles business logic for the per-user cart.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddItem stages an artwork in the user's cart. The sold check performed
// here is advisory; the checkout transaction re-verifies under lock.
func (s *CartService) AddItem(userID, postID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	return s.cartRepo.AddItem(userID, postID, quantity)
}

// RemoveItem drops an artwork from the cart; no-op if absent.
func (s *CartService) RemoveItem(userID, postID string) error {
	return s.cartRepo.RemoveItem(userID, postID)
}

// ViewCart returns the cart lines with live artwork snapshots.
func (s *CartService) ViewCart(userID string) ([]models.CartLine, error) {
	return s.cartRepo.View(userID)
}
