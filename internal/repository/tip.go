package repository

import (
	"context"
	"errors"
	"strings"

	"helphub/internal/cache"
	"helphub/internal/models"

	"gorm.io/gorm"
)

// TipFilter narrows a tip listing. Zero values match everything.
type TipFilter struct {
	Category string
}

// TipRepository defines persistence operations for community tips.
type TipRepository interface {
	Create(ctx context.Context, tip *models.CommunityTip) error
	GetByID(ctx context.Context, id uint) (*models.CommunityTip, error)
	List(ctx context.Context, filter TipFilter) ([]*models.CommunityTip, error)
	IncrementLikes(ctx context.Context, id uint) (*models.CommunityTip, error)
}

type tipRepository struct {
	db *gorm.DB
}

// NewTipRepository returns a new TipRepository implementation.
func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(ctx context.Context, tip *models.CommunityTip) error {
	if err := r.db.WithContext(ctx).Create(tip).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTips(ctx)
	return nil
}

func (r *tipRepository) GetByID(ctx context.Context, id uint) (*models.CommunityTip, error) {
	var tip models.CommunityTip
	if err := r.db.WithContext(ctx).First(&tip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tip")
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachOwners(ctx, []*models.CommunityTip{&tip}); err != nil {
		return nil, err
	}
	return &tip, nil
}

// List returns tips newest first, each joined with its owner. The unfiltered
// listing is served from cache when available.
func (r *tipRepository) List(ctx context.Context, filter TipFilter) ([]*models.CommunityTip, error) {
	category := strings.TrimSpace(filter.Category)
	if category != "" {
		return r.list(ctx, category)
	}

	var tips []*models.CommunityTip
	err := cache.Aside(ctx, cache.TipsListKey, &tips, cache.TipsListTTL, func() error {
		var err error
		tips, err = r.list(ctx, "")
		return err
	})
	if err != nil {
		return nil, err
	}
	if tips == nil {
		tips = make([]*models.CommunityTip, 0)
	}
	return tips, nil
}

func (r *tipRepository) list(ctx context.Context, category string) ([]*models.CommunityTip, error) {
	query := r.db.WithContext(ctx).Model(&models.CommunityTip{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	tips := make([]*models.CommunityTip, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&tips).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachOwners(ctx, tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// IncrementLikes adds exactly one like in a single UPDATE and returns the
// fresh record.
func (r *tipRepository) IncrementLikes(ctx context.Context, id uint) (*models.CommunityTip, error) {
	result := r.db.WithContext(ctx).Model(&models.CommunityTip{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Tip")
	}
	cache.InvalidateTips(ctx)
	return r.GetByID(ctx, id)
}

// attachOwners sets Owner on every tip whose author still exists.
func (r *tipRepository) attachOwners(ctx context.Context, tips []*models.CommunityTip) error {
	if len(tips) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(tips))
	seen := make(map[uint]struct{}, len(tips))
	for _, t := range tips {
		if _, ok := seen[t.UserID]; ok {
			continue
		}
		seen[t.UserID] = struct{}{}
		ids = append(ids, t.UserID)
	}

	owners, err := loadOwners(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for _, t := range tips {
		if o, ok := owners[t.UserID]; ok {
			owner := o
			t.Owner = &owner
		}
	}
	return nil
}
