// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is a Help Hub account. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"_id"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	FullName  string     `gorm:"not null" json:"full_name"`
	Location  string     `json:"location,omitempty"`
	Skills    StringList `gorm:"type:text" json:"skills"`
	Interests StringList `gorm:"type:text" json:"interests"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Owner is the public slice of a user joined onto listings.
type Owner struct {
	ID       uint   `json:"_id"`
	FullName string `json:"full_name"`
}
