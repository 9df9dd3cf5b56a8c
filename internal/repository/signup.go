package repository

import (
	"context"

	"helphub/internal/models"

	"gorm.io/gorm"
)

// SignupRepository defines persistence operations for volunteer signups.
type SignupRepository interface {
	Create(ctx context.Context, signup *models.VolunteerSignup) error
	Exists(ctx context.Context, userID, opportunityID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.VolunteerSignup, error)
	DeleteOwned(ctx context.Context, id, userID uint) error
}

type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository returns a new SignupRepository implementation.
func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

// DuplicateSignupMessage is reported when a user signs up twice for one opportunity.
const DuplicateSignupMessage = "Already signed up for this opportunity"

func (r *signupRepository) Create(ctx context.Context, signup *models.VolunteerSignup) error {
	if signup.Status == "" {
		signup.Status = models.SignupStatusPending
	}
	if err := r.db.WithContext(ctx).Omit("Opportunity").Create(signup).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(DuplicateSignupMessage)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *signupRepository) Exists(ctx context.Context, userID, opportunityID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VolunteerSignup{}).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListByUser returns the user's signups, newest first, each with its opportunity.
func (r *signupRepository) ListByUser(ctx context.Context, userID uint) ([]*models.VolunteerSignup, error) {
	signups := make([]*models.VolunteerSignup, 0)
	if err := r.db.WithContext(ctx).
		Preload("Opportunity").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&signups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return signups, nil
}

// DeleteOwned removes the signup only when it belongs to userID. Missing and
// foreign signups are both reported as not found.
func (r *signupRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.VolunteerSignup{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Signup")
	}
	return nil
}
