package service

import (
	"context"

	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the optional profile fields. Empty strings and
// nil lists keep the stored value; an empty non-nil list clears it.
type UpdateProfileInput struct {
	UserID    uint     `json:"-"`
	FullName  string   `json:"full_name" validate:"max=100"`
	Location  string   `json:"location" validate:"max=200"`
	Skills    []string `json:"skills" validate:"max=50"`
	Interests []string `json:"interests" validate:"max=50"`
	AvatarURL string   `json:"avatar_url" validate:"max=2048"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.Skills != nil {
		user.Skills = models.StringList(in.Skills)
	}
	if in.Interests != nil {
		user.Interests = models.StringList(in.Interests)
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
