package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"advision/internal/core/domain"
	"advision/internal/core/port"
)

// Querier is the subset of pgxpool.Pool the repository needs. Tests
// substitute a pgxmock pool through it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
type CampaignRepository struct {
	db Querier
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// selectColumns coalesces nullable columns so absent values surface as
// zero values instead of scan errors; the aggregation layer relies on
// that default-to-zero behaviour.
const selectColumns = `
        SELECT
            id,
            COALESCE(platform, ''),
            COALESCE(country, ''),
            COALESCE(product_category, ''),
            COALESCE(spend, 0),
            COALESCE(impressions, 0),
            COALESCE(clicks, 0),
            COALESCE(conversions, 0),
            COALESCE(reach, 0),
            COALESCE(predicted_engagement_rate, 0),
            created_at
        FROM campaigns`

// Append inserts a campaign with its prediction in a single statement.
// The database assigns id and created_at; RETURNING makes the insert
// atomic with respect to readers, so no partial record is ever visible.
func (r *CampaignRepository) Append(ctx context.Context, f domain.CampaignFeatures, prediction float64) (domain.CampaignRecord, error) {
	rec := domain.CampaignRecord{
		CampaignFeatures:        f,
		PredictedEngagementRate: prediction,
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO campaigns
            (platform, country, product_category, spend, impressions, clicks, conversions, reach, predicted_engagement_rate)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at`,
		f.Platform, f.Country, f.ProductCategory, f.Spend, f.Impressions, f.Clicks, f.Conversions, f.Reach, prediction,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return domain.CampaignRecord{}, &port.StoreError{Op: "append", Err: err}
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first. Ties on
// created_at are broken by id so the ordering stays stable for rows
// inserted within one timestamp granule.
func (r *CampaignRepository) ListRecent(ctx context.Context, limit int) ([]domain.CampaignRecord, error) {
	rows, err := r.db.Query(ctx, selectColumns+`
        ORDER BY created_at DESC, id DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, &port.StoreError{Op: "list recent", Err: err}
	}
	records, err := collectRecords(rows)
	if err != nil {
		return nil, &port.StoreError{Op: "list recent", Err: err}
	}
	return records, nil
}

// ListAll returns the full campaign history for aggregation, in no
// particular order.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.CampaignRecord, error) {
	rows, err := r.db.Query(ctx, selectColumns)
	if err != nil {
		return nil, &port.StoreError{Op: "list all", Err: err}
	}
	records, err := collectRecords(rows)
	if err != nil {
		return nil, &port.StoreError{Op: "list all", Err: err}
	}
	return records, nil
}

func collectRecords(rows pgx.Rows) ([]domain.CampaignRecord, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var rec domain.CampaignRecord
		err := row.Scan(
			&rec.ID,
			&rec.Platform,
			&rec.Country,
			&rec.ProductCategory,
			&rec.Spend,
			&rec.Impressions,
			&rec.Clicks,
			&rec.Conversions,
			&rec.Reach,
			&rec.PredictedEngagementRate,
			&rec.CreatedAt,
		)
		return rec, err
	})
}
