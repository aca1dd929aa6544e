package services

import (
	"galeri/internal/models"
	"galeri/internal/repositories"
)

// OrderService exposes reads over the order ledger. Orders are written only
// by the checkout transaction and never change afterwards.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// ListOrders returns the user's orders, newest first, with their items.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.ListForUser(userID)
}

// GetOrder returns one of the user's orders. Another buyer's order reads as
// not found rather than forbidden.
func (s *OrderService) GetOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}
