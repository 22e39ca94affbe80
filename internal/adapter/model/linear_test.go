package model

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"advision/internal/core/domain"
)

func testFeatures() domain.CampaignFeatures {
	return domain.CampaignFeatures{
		Platform:        "instagram",
		Country:         "US",
		ProductCategory: "fashion",
		Spend:           100,
		Impressions:     10000,
		Clicks:          50,
		Conversions:     5,
		Reach:           7000,
	}
}

func TestLoadRejectsColumnMismatch(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "model_bad_columns.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "column")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_model.json"))
	require.Error(t, err)
}

func TestScoreArithmetic(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "model_baseline.json"))
	require.NoError(t, err)

	got, err := m.Score(testFeatures())
	require.NoError(t, err)

	// intercept + platform + country + category + numeric terms
	want := 0.01 + 0.02 + 0.005 + 0.003 +
		0.00001*100 + 0.0000001*10000 + 0.00001*50 + 0.0001*5 + -0.0000001*7000
	require.InDelta(t, want, got, 1e-12)
	require.False(t, math.IsNaN(got) || math.IsInf(got, 0))
}

func TestScoreUnseenLevelFails(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "model_baseline.json"))
	require.NoError(t, err)

	f := testFeatures()
	f.Platform = "carrier_pigeon"
	_, err = m.Score(f)
	require.Error(t, err)
	require.Contains(t, err.Error(), "carrier_pigeon")
}

func TestScoreDeterministic(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "model_baseline.json"))
	require.NoError(t, err)

	a, err := m.Score(testFeatures())
	require.NoError(t, err)
	b, err := m.Score(testFeatures())
	require.NoError(t, err)
	require.Equal(t, a, b)
}
