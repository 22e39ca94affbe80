package usecase

import (
	"context"

	"advision/internal/core/domain"
	"advision/internal/core/port"
)

// ModelVersion tags every prediction served by the deployed model
// artifact. It is a deployment constant, not something read out of the
// artifact file.
const ModelVersion = "baseline_v1"

// CampaignService provides the prediction and aggregation business
// logic. It orchestrates the schema validator, the scorer and the
// repository to implement the CampaignUseCase interface. The service
// holds no mutable state of its own; all state lives in the store.
type CampaignService struct {
	repo   port.CampaignRepository
	scorer port.Scorer
}

// NewCampaignService creates a service over the given repository and
// model scorer.
func NewCampaignService(repo port.CampaignRepository, scorer port.Scorer) *CampaignService {
	return &CampaignService{repo: repo, scorer: scorer}
}

// PredictEngagement validates the payload and scores it without
// persisting anything. Scoring failures are wrapped as PredictionError
// and never retried.
func (s *CampaignService) PredictEngagement(ctx context.Context, payload domain.FeaturePayload) (port.PredictionResult, error) {
	features, err := payload.Features()
	if err != nil {
		return port.PredictionResult{}, err
	}
	rate, err := s.score(features)
	if err != nil {
		return port.PredictionResult{}, err
	}
	return port.PredictionResult{EngagementRate: rate, ModelVersion: ModelVersion}, nil
}

// CreateWithPrediction validates, scores and persists a campaign in one
// operation. The store assigns id and created_at; the returned record
// echoes every input field plus the prediction.
func (s *CampaignService) CreateWithPrediction(ctx context.Context, payload domain.FeaturePayload) (domain.CampaignRecord, error) {
	features, err := payload.Features()
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	rate, err := s.score(features)
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	return s.repo.Append(ctx, features, rate)
}

// ListCampaigns returns the most recently created campaigns, newest
// first, capped at DefaultListLimit.
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	return s.repo.ListRecent(ctx, port.DefaultListLimit)
}

// Summary loads the full campaign history and reduces it to aggregate
// statistics. The read is not isolated from concurrent appends; a
// snapshot may or may not include an in-flight record.
func (s *CampaignService) Summary(ctx context.Context) (domain.SummaryStatistics, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.SummaryStatistics{}, err
	}
	return Summarize(records), nil
}

func (s *CampaignService) score(features domain.CampaignFeatures) (float64, error) {
	rate, err := s.scorer.Score(features)
	if err != nil {
		return 0, &port.PredictionError{Err: err}
	}
	return rate, nil
}
