package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/validation"
)

type TipService struct {
	tipRepo repository.TipRepository
	intN    func(n int) int
}

// CreateTipInput is the payload for a new tip.
type CreateTipInput struct {
	UserID      uint   `json:"-"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=100"`
}

func NewTipService(tipRepo repository.TipRepository) *TipService {
	return &TipService{tipRepo: tipRepo, intN: rand.IntN}
}

func (s *TipService) List(ctx context.Context, filter repository.TipFilter) ([]*models.CommunityTip, error) {
	return s.tipRepo.List(ctx, filter)
}

func (s *TipService) Create(ctx context.Context, in CreateTipInput) (*models.CommunityTip, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := validation.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tip := &models.CommunityTip{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		UserID:      in.UserID,
	}
	if err := s.tipRepo.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// Like adds one like. Repeated likes by the same user all count.
func (s *TipService) Like(ctx context.Context, tipID uint) (*models.CommunityTip, error) {
	return s.tipRepo.IncrementLikes(ctx, tipID)
}

// Random picks one tip uniformly, optionally within a category.
func (s *TipService) Random(ctx context.Context, category string) (*models.CommunityTip, error) {
	tips, err := s.tipRepo.List(ctx, repository.TipFilter{Category: category})
	if err != nil {
		return nil, err
	}
	tip := pickTip(tips, s.intN)
	if tip == nil {
		return nil, models.NewNotFoundError("Tip")
	}
	return tip, nil
}

func pickTip(tips []*models.CommunityTip, intN func(int) int) *models.CommunityTip {
	if len(tips) == 0 {
		return nil
	}
	return tips[intN(len(tips))]
}
