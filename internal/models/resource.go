package models

import "time"

// Resource listing types.
const (
	ResourceTypeOffer   = "offer"
	ResourceTypeRequest = "request"
)

// Resource is an offer-or-request listing on the exchange board.
type Resource struct {
	ID           uint      `gorm:"primaryKey" json:"_id"`
	Type         string    `gorm:"index;not null" json:"type"`
	ResourceName string    `gorm:"not null" json:"resource_name"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	Location     string    `gorm:"not null" json:"location"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsValidResourceType reports whether t is offer or request.
func IsValidResourceType(t string) bool {
	return t == ResourceTypeOffer || t == ResourceTypeRequest
}
