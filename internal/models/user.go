package models

import "gorm.io/gorm"

// User represents an artist or collector account.
type User struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username       string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email          string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password       string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Bio            string `json:"bio" gorm:"type:text" validate:"omitempty,max=1000"`
	ProfilePicture string `json:"profile_picture" gorm:"type:varchar(500)" validate:"omitempty,url"`
	gorm.Model     `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
