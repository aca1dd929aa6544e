package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusCompleted is the only status an order ever has. Orders are an
// append-only audit trail; there is no cancellation or refund flow.
const OrderStatusCompleted = "completed"

// Order is the durable record of a successful checkout. Immutable after
// creation.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Status      string          `json:"status" gorm:"type:varchar(20);default:completed"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	Items       []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderItem freezes one cart line at the commit instant: the price recorded
// here is the artwork's price while the row lock was held, decoupled from any
// later reads of the post.
type OrderItem struct {
	ID       string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID  string          `json:"-" gorm:"index;type:varchar(36)"`
	PostID   string          `json:"post_id" gorm:"type:varchar(36)"`
	Post     Post            `json:"-" gorm:"foreignKey:PostID"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity int             `json:"quantity" gorm:"not null;default:1"`
}
