package models

import "time"

// Address is a shipping address record. Addresses are kept per user but are
// deliberately not linked to orders.
type Address struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36)"`
	FullName   string    `json:"full_name" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Street     string    `json:"street" gorm:"type:varchar(255)" validate:"required,max=255"`
	City       string    `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	State      string    `json:"state" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	Country    string    `json:"country" gorm:"type:varchar(100)" validate:"required,max=100"`
	Phone      string    `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	CreatedAt  time.Time `json:"created_at"`
}
