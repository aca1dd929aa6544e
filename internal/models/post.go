package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Artwork categories a post can be listed under.
const (
	CategoryPainting    = "painting"
	CategorySculpture   = "sculpture"
	CategoryPhotography = "photography"
	CategoryDigital     = "digital"
	CategoryOther       = "other"
)

// Post represents an artwork listing. Each artwork is a one-of-one item:
// IsSold transitions false to true at most once, inside the checkout
// transaction, and never back.
type Post struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string          `json:"user_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Title       string          `json:"title" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Category    string          `json:"category" gorm:"type:varchar(20);default:other" validate:"omitempty,oneof=painting sculpture photography digital other"`
	Description string          `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	ImageURL    string          `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,url"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	IsSold      bool            `json:"is_sold" gorm:"not null;default:false"`
	gorm.Model  `json:"-"`
}

// PostSnapshot is the slim view of a post embedded in cart and order payloads.
type PostSnapshot struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	IsSold   bool            `json:"is_sold"`
}

// Snapshot returns the slim view of the post.
func (p *Post) Snapshot() PostSnapshot {
	return PostSnapshot{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		IsSold:   p.IsSold,
	}
}
