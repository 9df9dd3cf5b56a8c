package repository

import (
	"context"
	"sync"
	"testing"

	"helphub/internal/cache"
	"helphub/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTip(t *testing.T, repo TipRepository, ownerID uint, title, category string) *models.CommunityTip {
	t.Helper()
	tip := &models.CommunityTip{Title: title, Description: "Be kind", Category: category, UserID: ownerID}
	require.NoError(t, repo.Create(context.Background(), tip))
	return tip
}

func TestTipRepository_ListJoinsOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTipRepository(db)
	ctx := context.Background()
	author := createUser(t, db, "author@example.com", "Tip Author")

	createTip(t, repo, author.ID, "First", "Safety")
	createTip(t, repo, author.ID, "Second", "Leadership")

	tips, err := repo.List(ctx, TipFilter{})
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, "Second", tips[0].Title)
	require.NotNil(t, tips[0].Owner)
	assert.Equal(t, models.Owner{ID: author.ID, FullName: "Tip Author"}, *tips[0].Owner)

	safety, err := repo.List(ctx, TipFilter{Category: "Safety"})
	require.NoError(t, err)
	require.Len(t, safety, 1)
	assert.Equal(t, "First", safety[0].Title)
}

func TestTipRepository_IncrementLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTipRepository(db)
	ctx := context.Background()
	author := createUser(t, db, "author@example.com", "Tip Author")
	tip := createTip(t, repo, author.ID, "Hydrate", "Safety")

	for i := 1; i <= 3; i++ {
		liked, err := repo.IncrementLikes(ctx, tip.ID)
		require.NoError(t, err)
		assert.Equal(t, i, liked.Likes)
		require.NotNil(t, liked.Owner)
	}

	_, err := repo.IncrementLikes(ctx, tip.ID+1000)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestTipRepository_ConcurrentLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTipRepository(db)
	author := createUser(t, db, "author@example.com", "Tip Author")
	tip := createTip(t, repo, author.ID, "Share rides", "Community Building")

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementLikes(context.Background(), tip.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	fresh, err := repo.GetByID(context.Background(), tip.ID)
	require.NoError(t, err)
	assert.Equal(t, n, fresh.Likes)
}

func TestTipRepository_CachedListInvalidatedOnWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	db := setupTestDB(t)
	repo := NewTipRepository(db)
	ctx := context.Background()
	author := createUser(t, db, "author@example.com", "Tip Author")
	tip := createTip(t, repo, author.ID, "Listen first", "Communication")

	tips, err := repo.List(ctx, TipFilter{})
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.True(t, mr.Exists(cache.TipsListKey))

	cached, err := repo.List(ctx, TipFilter{})
	require.NoError(t, err)
	require.Len(t, cached, 1)
	require.NotNil(t, cached[0].Owner)
	assert.Equal(t, "Tip Author", cached[0].Owner.FullName)

	_, err = repo.IncrementLikes(ctx, tip.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.TipsListKey))

	tips, err = repo.List(ctx, TipFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, tips[0].Likes)
}

func TestTipRepository_CachedListReflectsAuthorRename(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	db := setupTestDB(t)
	tips := NewTipRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()
	author := createUser(t, db, "author@example.com", "Tip Author")
	createTip(t, tips, author.ID, "Listen first", "Communication")

	list, err := tips.List(ctx, TipFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, mr.Exists(cache.TipsListKey))

	author.FullName = "Renamed Author"
	require.NoError(t, users.Update(ctx, author))
	assert.False(t, mr.Exists(cache.TipsListKey))

	list, err = tips.List(ctx, TipFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Owner)
	assert.Equal(t, "Renamed Author", list[0].Owner.FullName)
}
