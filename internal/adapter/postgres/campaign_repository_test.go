package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"advision/internal/core/domain"
	"advision/internal/core/port"
)

var testFeatures = domain.CampaignFeatures{
	Platform:        "instagram",
	Country:         "US",
	ProductCategory: "fashion",
	Spend:           500,
	Impressions:     40000,
	Clicks:          480,
	Conversions:     12,
	Reach:           28000,
}

func TestAppendReturnsPopulatedRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO campaigns`).
		WithArgs("instagram", "US", "fashion", 500.0, int64(40000), int64(480), int64(12), int64(28000), 0.042).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	repo := NewCampaignRepository(mock)
	rec, err := repo.Append(context.Background(), testFeatures, 0.042)
	require.NoError(t, err)
	require.Equal(t, int64(7), rec.ID)
	require.Equal(t, createdAt, rec.CreatedAt)
	require.Equal(t, testFeatures, rec.CampaignFeatures)
	require.Equal(t, 0.042, rec.PredictedEngagementRate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendWrapsStoreError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO campaigns`).
		WillReturnError(errors.New("connection reset"))

	repo := NewCampaignRepository(mock)
	_, err = repo.Append(context.Background(), testFeatures, 0.042)
	var storeErr *port.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "append", storeErr.Op)
}

func campaignRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "platform", "country", "product_category", "spend",
		"impressions", "clicks", "conversions", "reach",
		"predicted_engagement_rate", "created_at",
	})
}

func TestListRecentOrdersAndLimits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rows := campaignRows().
		AddRow(int64(3), "tiktok", "UK", "beauty", 80.0, int64(2000), int64(30), int64(2), int64(1500), 0.05, now).
		AddRow(int64(2), "facebook", "US", "fashion", 120.0, int64(4000), int64(40), int64(3), int64(3000), 0.03, now.Add(-time.Minute))

	mock.ExpectQuery(`(?s)SELECT.+FROM campaigns.+ORDER BY created_at DESC, id DESC.+LIMIT`).
		WithArgs(100).
		WillReturnRows(rows)

	repo := NewCampaignRepository(mock)
	got, err := repo.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(3), got[0].ID)
	require.Equal(t, "tiktok", got[0].Platform)
	require.Equal(t, int64(2), got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllCollectsEverything(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rows := campaignRows().
		AddRow(int64(1), "instagram", "US", "fashion", 500.0, int64(40000), int64(480), int64(12), int64(28000), 0.042, now)

	mock.ExpectQuery(`(?s)SELECT.+FROM campaigns`).
		WillReturnRows(rows)

	repo := NewCampaignRepository(mock)
	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 0.042, got[0].PredictedEngagementRate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllWrapsStoreError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT.+FROM campaigns`).
		WillReturnError(errors.New("relation does not exist"))

	repo := NewCampaignRepository(mock)
	_, err = repo.ListAll(context.Background())
	var storeErr *port.StoreError
	require.ErrorAs(t, err, &storeErr)
}
