package port

import (
	"context"

	"advision/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// engagement service. This interface is the primary port into the
// application domain; the HTTP adapter depends on it only.
type CampaignUseCase interface {
	// PredictEngagement scores a campaign description without storing
	// anything. The model's raw output is returned verbatim, including
	// values outside [0,1].
	PredictEngagement(ctx context.Context, payload domain.FeaturePayload) (PredictionResult, error)

	// CreateWithPrediction scores the campaign, persists it together
	// with the prediction and returns the stored record.
	CreateWithPrediction(ctx context.Context, payload domain.FeaturePayload) (domain.CampaignRecord, error)

	// ListCampaigns returns the most recent campaigns, newest first,
	// capped at DefaultListLimit.
	ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)

	// Summary recomputes aggregate statistics over the full campaign
	// history.
	Summary(ctx context.Context) (domain.SummaryStatistics, error)
}

// PredictionResult is the outcome of scoring one feature row. It is a
// DTO used by the HTTP layer and carries no domain behaviour.
type PredictionResult struct {
	EngagementRate float64
	ModelVersion   string
}
