package models

import (
	"encoding/json"
	"time"
)

// Opportunity is a volunteer listing.
type Opportunity struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"index;not null" json:"category"`
	Location    string    `gorm:"not null" json:"location"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Contact     string    `gorm:"not null" json:"contact"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Signup status values.
const (
	SignupStatusPending   = "pending"
	SignupStatusConfirmed = "confirmed"
	SignupStatusCancelled = "cancelled"
)

// VolunteerSignup links a user to an opportunity. A user holds at most one
// signup per opportunity.
type VolunteerSignup struct {
	ID            uint         `gorm:"primaryKey" json:"_id"`
	UserID        uint         `gorm:"uniqueIndex:idx_signup_user_opportunity;not null" json:"user_id"`
	OpportunityID uint         `gorm:"uniqueIndex:idx_signup_user_opportunity;not null" json:"-"`
	Opportunity   *Opportunity `gorm:"foreignKey:OpportunityID" json:"-"`
	Status        string       `gorm:"not null;default:pending" json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// MarshalJSON renders opportunity_id as the joined opportunity when loaded,
// and as the bare id otherwise.
func (s VolunteerSignup) MarshalJSON() ([]byte, error) {
	type alias VolunteerSignup
	var opportunity any = s.OpportunityID
	if s.Opportunity != nil {
		opportunity = s.Opportunity
	}
	return json.Marshal(struct {
		alias
		OpportunityRef any `json:"opportunity_id"`
	}{alias(s), opportunity})
}
