package services

import (
	"encoding/json"
	"log"
	"time"

	"galeri/internal/models"
	"galeri/internal/repositories"
)

// EventPublisher publishes domain events to the message broker. Satisfied by
// *rabbitmq.Client.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CheckoutService orchestrates the purchase of a cart. The atomicity and
// exactly-once-sale guarantees live in the CheckoutRepository transaction;
// this layer adds the post-commit event emission, which is strictly
// best-effort: once the transaction has committed, nothing here can undo
// the order.
type CheckoutService struct {
	checkoutRepo repositories.CheckoutRepository
	publisher    EventPublisher
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(checkoutRepo repositories.CheckoutRepository, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		publisher:    publisher,
	}
}

// Checkout converts the user's cart into an order and announces the sale.
// A clean failure leaves every store unchanged, so the caller may simply
// retry; the retried call re-reads the cart from scratch.
func (s *CheckoutService) Checkout(userID string) (*models.Order, error) {
	order, err := s.checkoutRepo.Checkout(userID)
	if err != nil {
		return nil, err
	}

	s.publishOrderPlaced(order)
	return order, nil
}

func (s *CheckoutService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping order.placed publication.")
		return
	}

	postIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		postIDs = append(postIDs, item.PostID)
	}

	event := models.OrderPlacedEvent{
		OrderID:   order.ID,
		BuyerID:   order.UserID,
		PostIDs:   postIDs,
		Total:     order.TotalAmount.String(),
		CreatedAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order.placed event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("order.placed", body); err != nil {
		log.Printf("Warning: failed to publish order.placed event for order %s: %v", order.ID, err)
	}
}
