package service

import (
	"context"

	"helphub/internal/models"
	"helphub/internal/repository"
)

type SignupService struct {
	signupRepo      repository.SignupRepository
	opportunityRepo repository.OpportunityRepository
}

func NewSignupService(signupRepo repository.SignupRepository, opportunityRepo repository.OpportunityRepository) *SignupService {
	return &SignupService{signupRepo: signupRepo, opportunityRepo: opportunityRepo}
}

// SignUp registers userID for the opportunity. A second signup for the same
// pair is a conflict, whether caught here or by the unique index.
func (s *SignupService) SignUp(ctx context.Context, userID, opportunityID uint) (*models.VolunteerSignup, error) {
	if opportunityID == 0 {
		return nil, models.NewValidationError("missing required fields: opportunity_id")
	}

	if _, err := s.opportunityRepo.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	}

	exists, err := s.signupRepo.Exists(ctx, userID, opportunityID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError(repository.DuplicateSignupMessage)
	}

	signup := &models.VolunteerSignup{
		UserID:        userID,
		OpportunityID: opportunityID,
		Status:        models.SignupStatusPending,
	}
	if err := s.signupRepo.Create(ctx, signup); err != nil {
		return nil, err
	}
	return signup, nil
}

func (s *SignupService) ListMine(ctx context.Context, userID uint) ([]*models.VolunteerSignup, error) {
	return s.signupRepo.ListByUser(ctx, userID)
}

func (s *SignupService) Cancel(ctx context.Context, userID, signupID uint) error {
	return s.signupRepo.DeleteOwned(ctx, signupID, userID)
}
