package models

import (
	"encoding/json"
	"time"
)

// CommunityTip is a short post with a like counter.
type CommunityTip struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"index;not null" json:"category"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	Owner       *Owner    `gorm:"-" json:"-"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MarshalJSON renders user_id as the joined owner when loaded, and as the
// bare id otherwise.
func (t CommunityTip) MarshalJSON() ([]byte, error) {
	type alias CommunityTip
	var owner any = t.UserID
	if t.Owner != nil {
		owner = t.Owner
	}
	return json.Marshal(struct {
		alias
		UserRef any `json:"user_id"`
	}{alias(t), owner})
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (t *CommunityTip) UnmarshalJSON(data []byte) error {
	type alias CommunityTip
	aux := struct {
		*alias
		UserRef json.RawMessage `json:"user_id"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.UserRef) == 0 || string(aux.UserRef) == "null" {
		return nil
	}
	if aux.UserRef[0] == '{' {
		var owner Owner
		if err := json.Unmarshal(aux.UserRef, &owner); err != nil {
			return err
		}
		t.Owner = &owner
		t.UserID = owner.ID
		return nil
	}
	return json.Unmarshal(aux.UserRef, &t.UserID)
}
