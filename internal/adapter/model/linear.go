// Package model loads the pre-trained engagement regression artifact
// and exposes it through the port.Scorer capability. The artifact is a
// JSON coefficient table produced offline by the training pipeline; it
// is read once at process start and never mutated, so a single instance
// is safe to share across concurrently handled requests.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"advision/internal/core/domain"
)

// artifact is the on-disk layout of the trained model. Columns records
// the feature order the model was fitted against; Coefficients holds
// the weight per numeric column and Levels the learned weight per
// categorical level.
type artifact struct {
	Columns      []string                      `json:"columns"`
	Intercept    float64                       `json:"intercept"`
	Coefficients map[string]float64            `json:"coefficients"`
	Levels       map[string]map[string]float64 `json:"levels"`
}

// LinearModel scores a campaign feature row with a fitted linear
// regression. Categorical fields contribute a per-level weight; a level
// the model has never seen cannot be encoded and fails the row.
type LinearModel struct {
	art artifact
}

// Load reads the model artifact from path. It fails when the artifact's
// column list does not match the service's feature schema, since a
// mismatch would silently misalign every prediction.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art artifact
	if err = json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(art.Columns) != len(domain.FeatureColumns) {
		return nil, fmt.Errorf("model artifact has %d columns, want %d", len(art.Columns), len(domain.FeatureColumns))
	}
	for i, col := range domain.FeatureColumns {
		if art.Columns[i] != col {
			return nil, fmt.Errorf("model artifact column %d is %q, want %q", i, art.Columns[i], col)
		}
	}
	return &LinearModel{art: art}, nil
}

// Score returns the raw regression output for one feature row. No
// clamping is applied; the caller receives the model's estimate
// verbatim even when it falls outside [0,1].
func (m *LinearModel) Score(f domain.CampaignFeatures) (float64, error) {
	sum := m.art.Intercept

	for _, cat := range []struct {
		column string
		level  string
	}{
		{"platform", f.Platform},
		{"country", f.Country},
		{"product_category", f.ProductCategory},
	} {
		weight, ok := m.art.Levels[cat.column][cat.level]
		if !ok {
			return 0, fmt.Errorf("unseen %s level %q", cat.column, cat.level)
		}
		sum += weight
	}

	sum += m.art.Coefficients["spend"] * f.Spend
	sum += m.art.Coefficients["impressions"] * float64(f.Impressions)
	sum += m.art.Coefficients["clicks"] * float64(f.Clicks)
	sum += m.art.Coefficients["conversions"] * float64(f.Conversions)
	sum += m.art.Coefficients["reach"] * float64(f.Reach)
	return sum, nil
}
