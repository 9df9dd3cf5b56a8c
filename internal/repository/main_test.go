package repository

import (
	"context"
	"testing"
	"time"

	"helphub/internal/database"
	"helphub/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hash", FullName: name}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createOpportunity(t *testing.T, db *gorm.DB, ownerID uint, title string, date time.Time) *models.Opportunity {
	t.Helper()
	opp := &models.Opportunity{
		Title:       title,
		Description: "Help out",
		Category:    "Community",
		Location:    "Town hall",
		Date:        date.UTC(),
		Contact:     "organizer@example.com",
		UserID:      ownerID,
	}
	require.NoError(t, NewOpportunityRepository(db).Create(context.Background(), opp))
	return opp
}
