package service

import (
	"context"
	"strings"
	"testing"

	"helphub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile_Merge(t *testing.T) {
	t.Parallel()

	stored := func() *models.User {
		return &models.User{
			ID:        1,
			Email:     "ada@example.com",
			FullName:  "Ada",
			Location:  "London",
			Skills:    models.StringList{"math"},
			Interests: models.StringList{"engines"},
			AvatarURL: "https://example.com/a.png",
		}
	}

	tests := []struct {
		name  string
		input UpdateProfileInput
		check func(t *testing.T, u *models.User)
	}{
		{
			name:  "empty input keeps everything",
			input: UpdateProfileInput{UserID: 1},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, stored(), u)
			},
		},
		{
			name:  "only location changes",
			input: UpdateProfileInput{UserID: 1, Location: "Paris"},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, "Paris", u.Location)
				assert.Equal(t, "Ada", u.FullName)
				assert.Equal(t, models.StringList{"math"}, u.Skills)
			},
		},
		{
			name:  "lists replaced when provided",
			input: UpdateProfileInput{UserID: 1, Skills: []string{"poetry", "math"}, Interests: []string{}},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, models.StringList{"poetry", "math"}, u.Skills)
				assert.Empty(t, u.Interests)
			},
		},
		{
			name:  "name and avatar change",
			input: UpdateProfileInput{UserID: 1, FullName: "Augusta Ada", AvatarURL: "https://example.com/b.png"},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, "Augusta Ada", u.FullName)
				assert.Equal(t, "https://example.com/b.png", u.AvatarURL)
				assert.Equal(t, "ada@example.com", u.Email)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopUserRepo()
			repo.getByIDFn = func(context.Context, uint) (*models.User, error) { return stored(), nil }
			var saved *models.User
			repo.updateFn = func(_ context.Context, u *models.User) error {
				saved = u
				return nil
			}

			user, err := NewUserService(repo).UpdateProfile(context.Background(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, saved)
			tt.check(t, user)
			assert.Equal(t, user, saved)
		})
	}
}

func TestUserService_UpdateProfile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("user vanished", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByIDFn = func(context.Context, uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User")
		}
		_, err := NewUserService(repo).UpdateProfile(context.Background(), UpdateProfileInput{UserID: 9})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("name too long", func(t *testing.T) {
		updated := false
		repo := noopUserRepo()
		repo.updateFn = func(context.Context, *models.User) error {
			updated = true
			return nil
		}
		_, err := NewUserService(repo).UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:   1,
			FullName: strings.Repeat("x", 101),
		})
		assertValidationError(t, err)
		assert.False(t, updated)
	})
}
