package models

import "time"

// Cart is the per-user staging area of intended purchases. One cart per
// user, created lazily on the first add.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one (cart, post) entry. Quantity is a desired unit count;
// re-adding the same artwork increments it rather than creating a second row.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string    `json:"-" gorm:"uniqueIndex:idx_cart_post;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex:idx_cart_post;type:varchar(36)"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is the read view returned by the cart endpoint: a live snapshot
// of the post plus the staged unit count.
type CartLine struct {
	Post     PostSnapshot `json:"post"`
	Quantity int          `json:"quantity"`
}
