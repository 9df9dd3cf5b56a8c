package service

import (
	"context"
	"strings"

	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/validation"
)

type ResourceService struct {
	resourceRepo repository.ResourceRepository
}

// CreateResourceInput is the payload for a new offer or request. A nil
// Quantity defaults to 1.
type CreateResourceInput struct {
	UserID       uint   `json:"-"`
	Type         string `json:"type" validate:"required,oneof=offer request"`
	ResourceName string `json:"resource_name" validate:"required,max=200"`
	Quantity     *int   `json:"quantity"`
	Location     string `json:"location" validate:"required,max=200"`
	Description  string `json:"description" validate:"required"`
}

func NewResourceService(resourceRepo repository.ResourceRepository) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

func (s *ResourceService) List(ctx context.Context, filter repository.ResourceFilter) ([]*models.Resource, error) {
	filter.UserID = 0
	return s.resourceRepo.List(ctx, filter)
}

func (s *ResourceService) ListMine(ctx context.Context, userID uint) ([]*models.Resource, error) {
	return s.resourceRepo.List(ctx, repository.ResourceFilter{UserID: userID})
}

func (s *ResourceService) Create(ctx context.Context, in CreateResourceInput) (*models.Resource, error) {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.ResourceName = strings.TrimSpace(in.ResourceName)
	if err := validation.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return nil, models.NewValidationError("quantity must be at least 1")
	}

	resource := &models.Resource{
		Type:         in.Type,
		ResourceName: in.ResourceName,
		Quantity:     quantity,
		Location:     in.Location,
		Description:  in.Description,
		UserID:       in.UserID,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(ctx context.Context, userID, resourceID uint) error {
	return s.resourceRepo.DeleteOwned(ctx, resourceID, userID)
}
