package repository

import (
	"context"
	"errors"
	"strings"

	"helphub/internal/models"

	"gorm.io/gorm"
)

// OpportunityFilter narrows an opportunity listing. Zero values match everything.
type OpportunityFilter struct {
	Category string
	Query    string
}

// OpportunityRepository defines persistence operations for volunteer opportunities.
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *models.Opportunity) error
	GetByID(ctx context.Context, id uint) (*models.Opportunity, error)
	List(ctx context.Context, filter OpportunityFilter) ([]*models.Opportunity, error)
}

type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository returns a new OpportunityRepository implementation.
func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *models.Opportunity) error {
	if err := r.db.WithContext(ctx).Create(opportunity).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *opportunityRepository) GetByID(ctx context.Context, id uint) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := r.db.WithContext(ctx).First(&opportunity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Opportunity")
		}
		return nil, models.NewInternalError(err)
	}
	return &opportunity, nil
}

// List returns opportunities by ascending date.
func (r *opportunityRepository) List(ctx context.Context, filter OpportunityFilter) ([]*models.Opportunity, error) {
	query := r.db.WithContext(ctx).Model(&models.Opportunity{})
	if c := strings.TrimSpace(filter.Category); c != "" {
		query = query.Where("category = ?", c)
	}
	if strings.TrimSpace(filter.Query) != "" {
		p := containsPattern(filter.Query)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", p, p, p)
	}

	opportunities := make([]*models.Opportunity, 0)
	if err := query.Order("date ASC, id ASC").Find(&opportunities).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return opportunities, nil
}
