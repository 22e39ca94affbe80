// Package sqlite provides a single-file campaign store for local
// development, backed by the cgo-free modernc driver. It honours the
// same append/read contract as the PostgreSQL adapter.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"advision/internal/core/domain"
	"advision/internal/core/port"
)

const schema = `
CREATE TABLE IF NOT EXISTS campaigns (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    platform TEXT,
    country TEXT,
    product_category TEXT,
    spend REAL,
    impressions INTEGER,
    clicks INTEGER,
    conversions INTEGER,
    reach INTEGER,
    predicted_engagement_rate REAL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_campaigns_created_at ON campaigns (created_at);`

// CampaignRepository implements port.CampaignRepository on a SQLite
// database file.
type CampaignRepository struct {
	db *sql.DB
}

// Open opens (and creates if necessary) the database at path and
// ensures the campaigns table exists. The caller must Close the
// repository when done.
func Open(ctx context.Context, path string) (*CampaignRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &port.StoreError{Op: "open", Err: err}
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, &port.StoreError{Op: "open", Err: err}
	}
	return &CampaignRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *CampaignRepository) Close() error { return r.db.Close() }

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

// timeLayout is fixed-width so lexicographic ordering of the stored
// text matches chronological ordering.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Append inserts a campaign with its prediction. created_at is set by
// the adapter in a fixed-width UTC text form so it round-trips exactly
// and sorts correctly. The single INSERT is atomic.
func (r *CampaignRepository) Append(ctx context.Context, f domain.CampaignFeatures, prediction float64) (domain.CampaignRecord, error) {
	rec := domain.CampaignRecord{
		CampaignFeatures:        f,
		PredictedEngagementRate: prediction,
		CreatedAt:               time.Now().UTC(),
	}
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO campaigns
            (platform, country, product_category, spend, impressions, clicks, conversions, reach, predicted_engagement_rate, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?)`,
		f.Platform, f.Country, f.ProductCategory, f.Spend, f.Impressions, f.Clicks, f.Conversions, f.Reach, prediction, rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return domain.CampaignRecord{}, &port.StoreError{Op: "append", Err: err}
	}
	rec.ID, err = res.LastInsertId()
	if err != nil {
		return domain.CampaignRecord{}, &port.StoreError{Op: "append", Err: err}
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first, ties broken by
// id for stable ordering.
func (r *CampaignRepository) ListRecent(ctx context.Context, limit int) ([]domain.CampaignRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+`
    ORDER BY created_at DESC, id DESC
    LIMIT ?`, limit)
	if err != nil {
		return nil, &port.StoreError{Op: "list recent", Err: err}
	}
	return scanRecords(rows)
}

// ListAll returns the full campaign history for aggregation.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.CampaignRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns)
	if err != nil {
		return nil, &port.StoreError{Op: "list all", Err: err}
	}
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]domain.CampaignRecord, error) {
	defer rows.Close()
	var records []domain.CampaignRecord
	for rows.Next() {
		var (
			rec       domain.CampaignRecord
			createdAt string
		)
		err := rows.Scan(
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
			&createdAt,
		)
		if err != nil {
			return nil, &port.StoreError{Op: "scan", Err: err}
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, &port.StoreError{Op: "scan", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &port.StoreError{Op: "scan", Err: err}
	}
	return records, nil
}
