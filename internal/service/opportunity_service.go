package service

import (
	"context"
	"strings"
	"time"

	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/validation"
)

type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
}

// CreateOpportunityInput is the payload for a new listing. Date accepts
// RFC 3339 or YYYY-MM-DD.
type CreateOpportunityInput struct {
	UserID      uint   `json:"-"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=100"`
	Location    string `json:"location" validate:"required,max=200"`
	Date        string `json:"date" validate:"required"`
	Contact     string `json:"contact" validate:"required,max=200"`
}

func NewOpportunityService(opportunityRepo repository.OpportunityRepository) *OpportunityService {
	return &OpportunityService{opportunityRepo: opportunityRepo}
}

func (s *OpportunityService) List(ctx context.Context, filter repository.OpportunityFilter) ([]*models.Opportunity, error) {
	return s.opportunityRepo.List(ctx, filter)
}

func (s *OpportunityService) Create(ctx context.Context, in CreateOpportunityInput) (*models.Opportunity, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := validation.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	opportunity := &models.Opportunity{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Date:        date,
		Contact:     in.Contact,
		UserID:      in.UserID,
	}
	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, models.NewValidationError("date must be an RFC 3339 timestamp or YYYY-MM-DD")
}
