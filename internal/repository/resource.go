package repository

import (
	"context"
	"strings"

	"helphub/internal/models"

	"gorm.io/gorm"
)

// ResourceFilter narrows a resource listing. Zero values match everything.
type ResourceFilter struct {
	Type   string
	Query  string
	UserID uint
}

// ResourceRepository defines persistence operations for exchange listings.
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error)
	DeleteOwned(ctx context.Context, id, userID uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository returns a new ResourceRepository implementation.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns resources newest first.
func (r *resourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	query := r.db.WithContext(ctx).Model(&models.Resource{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if t := strings.TrimSpace(filter.Type); t != "" {
		query = query.Where("type = ?", t)
	}
	if strings.TrimSpace(filter.Query) != "" {
		p := containsPattern(filter.Query)
		query = query.Where("LOWER(resource_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", p, p, p)
	}

	resources := make([]*models.Resource, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&resources).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return resources, nil
}

// DeleteOwned removes the resource only when it belongs to userID. Missing and
// foreign resources are both reported as not found.
func (r *resourceRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Resource{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Resource")
	}
	return nil
}
