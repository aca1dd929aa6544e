package models

import "time"

// OrderPlacedEvent is published after a checkout transaction commits. It is
// the only coupling between the checkout protocol and the social side of the
// system: the notification consumer tells each seller their artwork sold.
// Publishing is best-effort; a failure here never rolls back the order.
type OrderPlacedEvent struct {
	OrderID   string    `json:"order_id"`
	BuyerID   string    `json:"buyer_id"`
	PostIDs   []string  `json:"post_ids"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
