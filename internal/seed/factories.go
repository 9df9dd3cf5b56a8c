// Package seed provides helpers to create demo data for the Help Hub
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"helphub/internal/cache"
	"helphub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every generated user signs in with.
const DemoPassword = "password123"

var opportunityCategories = []string{
	"Environment", "Education", "Health", "Animals", "Community", "Elderly Care",
}

// Options tune generated data.
type Options struct {
	// SkipBcrypt stores a cheap hash for faster seeding in tests.
	SkipBcrypt bool
	// MaxDaysAhead bounds how far in the future opportunity dates fall.
	MaxDaysAhead int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	hash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDaysAhead <= 0 {
		opts.MaxDaysAhead = 60
	}
	return &Factory{db: db, opts: opts}
}

func (f *Factory) passwordHash() (string, error) {
	if f.hash != "" {
		return f.hash, nil
	}
	cost := bcrypt.DefaultCost
	if f.opts.SkipBcrypt {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return "", err
	}
	f.hash = string(hash)
	return f.hash, nil
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := f.passwordHash()
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user := &models.User{
		Email:     fmt.Sprintf("%s.%d@example.com", gofakeit.Username(), gofakeit.Number(1000, 9999)),
		Password:  hash,
		FullName:  gofakeit.Name(),
		Location:  gofakeit.City(),
		Skills:    models.StringList{gofakeit.JobDescriptor(), gofakeit.HackerVerb()},
		Interests: models.StringList{gofakeit.Hobby()},
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateOpportunity persists an opportunity posted by owner.
func (f *Factory) CreateOpportunity(owner *models.User, overrides ...func(*models.Opportunity)) (*models.Opportunity, error) {
	days := gofakeit.Number(1, f.opts.MaxDaysAhead)
	opp := &models.Opportunity{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		Category:    gofakeit.RandomString(opportunityCategories),
		Location:    gofakeit.Street() + ", " + gofakeit.City(),
		Date:        time.Now().UTC().Truncate(time.Hour).Add(time.Duration(days) * 24 * time.Hour),
		Contact:     owner.Email,
		UserID:      owner.ID,
	}
	for _, override := range overrides {
		override(opp)
	}

	if err := f.db.Create(opp).Error; err != nil {
		return nil, err
	}
	return opp, nil
}

// CreateResource persists an offer or request listed by owner.
func (f *Factory) CreateResource(owner *models.User, overrides ...func(*models.Resource)) (*models.Resource, error) {
	res := &models.Resource{
		Type:         gofakeit.RandomString([]string{models.ResourceTypeOffer, models.ResourceTypeRequest}),
		ResourceName: gofakeit.ProductName(),
		Quantity:     gofakeit.Number(1, 20),
		Location:     gofakeit.City(),
		Description:  gofakeit.Sentence(12),
		UserID:       owner.ID,
	}
	for _, override := range overrides {
		override(res)
	}

	if err := f.db.Create(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// Demo creates n users, each with one opportunity and one resource, and
// signs every user up for the previous user's opportunity.
func (f *Factory) Demo(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	var prev *models.Opportunity
	for i := 0; i < n; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)

		opp, err := f.CreateOpportunity(user)
		if err != nil {
			return nil, fmt.Errorf("create opportunity: %w", err)
		}
		if _, err := f.CreateResource(user); err != nil {
			return nil, fmt.Errorf("create resource: %w", err)
		}

		if prev != nil {
			signup := &models.VolunteerSignup{
				UserID:        user.ID,
				OpportunityID: prev.ID,
				Status:        models.SignupStatusPending,
			}
			if err := f.db.Omit("Opportunity").Create(signup).Error; err != nil {
				return nil, fmt.Errorf("create signup: %w", err)
			}
		}
		prev = opp
	}

	log.Printf("seeded %d demo users", len(users))
	return users, nil
}

// ClearAll removes every row the seeder can create, along with the cached
// copies of the removed users and the tip listing.
func ClearAll(db *gorm.DB) error {
	var userIDs []uint
	if err := db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	tables := []any{
		&models.VolunteerSignup{}, &models.CommunityTip{}, &models.Resource{},
		&models.Opportunity{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}

	ctx := context.Background()
	for _, id := range userIDs {
		cache.InvalidateUser(ctx, id)
	}
	cache.InvalidateTips(ctx)
	return nil
}
