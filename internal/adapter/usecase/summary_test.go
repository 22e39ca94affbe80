package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"advision/internal/core/domain"
)

func record(platform string, engagement, spend float64, impressions, clicks int64) domain.CampaignRecord {
	return domain.CampaignRecord{
		CampaignFeatures: domain.CampaignFeatures{
			Platform:    platform,
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
		},
		PredictedEngagementRate: engagement,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	require.Equal(t, 0, got.TotalCampaigns)
	require.Equal(t, 0.0, got.TotalSpend)
	require.Equal(t, 0.0, got.AvgCTR)
	require.NotNil(t, got.PlatformEngagement)
	require.Empty(t, got.PlatformEngagement)
}

func TestSummarizeThreeRecords(t *testing.T) {
	records := []domain.CampaignRecord{
		record("facebook", 0.02, 100, 1000, 10),
		record("facebook", 0.04, 200, 2000, 20),
		record("google_ads", 0.05, 300, 3000, 45),
	}

	got := Summarize(records)
	require.Equal(t, 3, got.TotalCampaigns)
	require.Equal(t, 600.0, got.TotalSpend)
	require.Equal(t, 0.0125, got.AvgCTR) // 75 / 6000
	require.Equal(t, map[string]float64{
		"facebook":   0.03,
		"google_ads": 0.05,
	}, got.PlatformEngagement)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	records := []domain.CampaignRecord{
		record("facebook", 0.02, 100, 1000, 10),
		record("facebook", 0.04, 200, 2000, 20),
		record("google_ads", 0.05, 300, 3000, 45),
		record("", 0.01, 50, 500, 5),
	}
	want := Summarize(records)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]domain.CampaignRecord(nil), records...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		require.Equal(t, want, Summarize(shuffled))
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	records := []domain.CampaignRecord{
		record("tiktok", 0.031, 120.5, 900, 17),
		record("youtube", 0.007, 88.25, 4100, 33),
	}
	require.Equal(t, Summarize(records), Summarize(records))
}

func TestSummarizeZeroImpressions(t *testing.T) {
	records := []domain.CampaignRecord{
		record("instagram", 0.02, 100, 0, 10),
		record("instagram", 0.03, 100, 0, 20),
	}
	got := Summarize(records)
	require.Equal(t, 0.0, got.AvgCTR)
}

func TestSummarizeNegativeValuesFlowThrough(t *testing.T) {
	// validation never rejects negatives, so aggregation must not either
	records := []domain.CampaignRecord{
		record("instagram", 0.02, -100, 1000, 2000),
	}
	got := Summarize(records)
	require.Equal(t, -100.0, got.TotalSpend)
	require.Equal(t, 2.0, got.AvgCTR)
}

func TestSummarizePlatformBuckets(t *testing.T) {
	// absent and empty platform share the "unknown" bucket, and a
	// literal "unknown" platform merges with them
	records := []domain.CampaignRecord{
		record("", 0.02, 0, 0, 0),
		record("unknown", 0.04, 0, 0, 0),
		record("instagram", 0.08, 0, 0, 0),
	}
	got := Summarize(records)
	require.Equal(t, map[string]float64{
		"unknown":   0.03,
		"instagram": 0.08,
	}, got.PlatformEngagement)
}
