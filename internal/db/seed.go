package db

import (
	"context"
	"fmt"
	"time"

	"advision/internal/core/port"
	"advision/internal/synth"
)

// Seed inserts synthetic demo campaigns through the repository port, so
// it works against any configured store backend. Each campaign is
// scored with the deployed model before insertion, the same way a live
// create-with-prediction request would be.
func Seed(ctx context.Context, repo port.CampaignRepository, scorer port.Scorer, count int) error {
	gen := synth.New(time.Now().UnixNano())
	for i := 0; i < count; i++ {
		sample := gen.Campaign()
		prediction, err := scorer.Score(sample.CampaignFeatures)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
		if _, err = repo.Append(ctx, sample.CampaignFeatures, prediction); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
	}
	return nil
}
