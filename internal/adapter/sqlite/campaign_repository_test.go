package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"advision/internal/core/domain"
)

func openTestRepo(t *testing.T) *CampaignRepository {
	t.Helper()
	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "advision_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func features(platform string, spend float64) domain.CampaignFeatures {
	return domain.CampaignFeatures{
		Platform:        platform,
		Country:         "US",
		ProductCategory: "fashion",
		Spend:           spend,
		Impressions:     1000,
		Clicks:          10,
		Conversions:     1,
		Reach:           700,
	}
}

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	rec, err := repo.Append(ctx, features("instagram", 500), 0.042)
	require.NoError(t, err)
	require.Positive(t, rec.ID)
	require.False(t, rec.CreatedAt.IsZero())
	require.Equal(t, 0.042, rec.PredictedEngagementRate)

	// the record is fully visible to a subsequent read
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, rec.ID, all[0].ID)
	require.Equal(t, "instagram", all[0].Platform)
	require.Equal(t, 500.0, all[0].Spend)
}

func TestListRecentNewestFirstWithCap(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		_, err := repo.Append(ctx, features("tiktok", float64(i)), 0.01)
		require.NoError(t, err)
	}

	got, err := repo.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, got, 100)
	// descending by creation, ties broken by id
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		require.False(t, cur.CreatedAt.After(prev.CreatedAt))
		if cur.CreatedAt.Equal(prev.CreatedAt) {
			require.Less(t, cur.ID, prev.ID)
		}
	}
	// the oldest 50 rows fell outside the cap
	require.Equal(t, int64(150), got[0].ID)
	require.Equal(t, int64(51), got[99].ID)
}

func TestListAllReturnsEverything(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, features("facebook", 100), 0.02)
	require.NoError(t, err)
	_, err = repo.Append(ctx, features("", 200), 0.04)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestEmptyStoreListsEmpty(t *testing.T) {
	repo := openTestRepo(t)

	recent, err := repo.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	require.Empty(t, recent)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}
