package repository

import (
	"context"
	"testing"
	"time"

	"helphub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityRepository_ListOrderedByDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	owner := createUser(t, db, "org@example.com", "Organizer")

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	createOpportunity(t, db, owner.ID, "Later", base.Add(48*time.Hour))
	createOpportunity(t, db, owner.ID, "Sooner", base)
	createOpportunity(t, db, owner.ID, "Middle", base.Add(24*time.Hour))

	list, err := repo.List(context.Background(), OpportunityFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)

	titles := []string{list[0].Title, list[1].Title, list[2].Title}
	assert.Equal(t, []string{"Sooner", "Middle", "Later"}, titles)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Date.Before(list[i-1].Date))
	}
}

func TestOpportunityRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "org@example.com", "Organizer")

	beach := createOpportunity(t, db, owner.ID, "Beach Cleanup", time.Now())
	beach.Category = "Environment"
	require.NoError(t, db.Save(beach).Error)
	createOpportunity(t, db, owner.ID, "Food Bank Shift", time.Now())

	byCategory, err := repo.List(ctx, OpportunityFilter{Category: "Environment"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, beach.ID, byCategory[0].ID)

	byQuery, err := repo.List(ctx, OpportunityFilter{Query: "food BANK"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Food Bank Shift", byQuery[0].Title)

	none, err := repo.List(ctx, OpportunityFilter{Category: "Environment", Query: "food"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpportunityRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	owner := createUser(t, db, "org@example.com", "Organizer")
	opp := createOpportunity(t, db, owner.ID, "Tutoring", time.Now())

	got, err := repo.GetByID(context.Background(), opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tutoring", got.Title)

	_, err = repo.GetByID(context.Background(), opp.ID+100)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
