package port

import (
	"context"

	"advision/internal/core/domain"
)

// DefaultListLimit caps how many campaigns the listing endpoint returns.
const DefaultListLimit = 100

// CampaignRepository defines the persistence layer for stored campaigns.
// It is an outbound port in hexagonal architecture. There are no update
// or delete operations; campaigns are append-only. Append must be
// atomic per call: a record is either fully visible to subsequent reads
// or not visible at all. No cross-call isolation is required, so a
// summary computed concurrently with an append may or may not include
// the in-flight record.
type CampaignRepository interface {
	// Append inserts a campaign with its prediction. The store assigns
	// id and created_at and returns the fully populated record.
	Append(ctx context.Context, features domain.CampaignFeatures, prediction float64) (domain.CampaignRecord, error)
	// ListRecent returns up to limit records ordered by created_at
	// descending, ties broken by insertion order.
	ListRecent(ctx context.Context, limit int) ([]domain.CampaignRecord, error)
	// ListAll returns every stored record in no particular order. It
	// feeds the aggregation engine, which is order-independent.
	ListAll(ctx context.Context) ([]domain.CampaignRecord, error)
}

// Scorer is the capability exposed by the opaque regression model: one
// scalar per feature row. Implementations are loaded once at process
// start, are read-only afterwards and must be safe for concurrent use.
// Scoring is deterministic, so a failed call is never retried.
type Scorer interface {
	Score(features domain.CampaignFeatures) (float64, error)
}
