package domain

import "time"

// CampaignFeatures is the fixed eight-field description of a marketing
// campaign handed to the regression model. Values are accepted as-is:
// the schema layer checks presence and type only, so negative spend or
// clicks greater than impressions pass through unchanged.
type CampaignFeatures struct {
	Platform        string
	Country         string
	ProductCategory string
	Spend           float64
	Impressions     int64
	Clicks          int64
	Conversions     int64
	Reach           int64
}

// CampaignRecord is a stored campaign. The store assigns ID and
// CreatedAt on insert; PredictedEngagementRate is computed once at
// creation and never updated.
type CampaignRecord struct {
	ID int64
	CampaignFeatures
	PredictedEngagementRate float64
	CreatedAt               time.Time
}

// SummaryStatistics is recomputed on every request from the full
// campaign history and never persisted.
type SummaryStatistics struct {
	TotalCampaigns     int
	TotalSpend         float64
	AvgCTR             float64
	PlatformEngagement map[string]float64
}
