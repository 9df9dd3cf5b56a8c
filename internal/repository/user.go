package repository

import (
	"context"
	"errors"

	"helphub/internal/cache"
	"helphub/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetOwners(ctx context.Context, ids []uint) (map[uint]models.Owner, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no account uses email. The match is exact.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetOwners returns the public identity of every existing user in ids.
func (r *userRepository) GetOwners(ctx context.Context, ids []uint) (map[uint]models.Owner, error) {
	return loadOwners(ctx, r.db, ids)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Update writes the profile columns of user. Email and password are never
// touched, so a user read back from cache (which carries no hash) is safe to pass.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Model(user).
		Select("full_name", "location", "skills", "interests", "avatar_url", "updated_at").
		Updates(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	// The cached tip list embeds author names.
	cache.InvalidateTips(ctx)
	return nil
}

func loadOwners(ctx context.Context, db *gorm.DB, ids []uint) (map[uint]models.Owner, error) {
	owners := make(map[uint]models.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	var rows []models.Owner
	if err := db.WithContext(ctx).Model(&models.User{}).
		Select("id", "full_name").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, o := range rows {
		owners[o.ID] = o
	}
	return owners, nil
}
