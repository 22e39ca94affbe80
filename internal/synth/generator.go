// Package synth generates synthetic marketing campaigns with realistic
// cross-field correlations: impressions track spend, clicks track a
// per-platform CTR baseline and conversions track a per-category rate.
// It backs both the demo seeder and the offline dataset generator; the
// served prediction path never depends on it.
package synth

import (
	"math"
	"math/rand"

	"advision/internal/core/domain"
)

var (
	platforms  = []string{"instagram", "facebook", "youtube", "tiktok", "google_ads"}
	countries  = []string{"IN", "SG", "US", "AE", "UK", "EU"}
	categories = []string{"fashion", "beauty", "electronics", "luxury", "grocery"}

	spendFactor = map[string]float64{
		"instagram":  1.0,
		"facebook":   0.9,
		"youtube":    1.3,
		"tiktok":     0.8,
		"google_ads": 1.5,
	}
	impressionsPerDollar = map[string]float64{
		"instagram":  150,
		"facebook":   180,
		"youtube":    80,
		"tiktok":     200,
		"google_ads": 120,
	}
	ctrBase = map[string]float64{
		"instagram":  0.012,
		"facebook":   0.01,
		"youtube":    0.008,
		"tiktok":     0.015,
		"google_ads": 0.02,
	}
	convBase = map[string]float64{
		"fashion":     0.03,
		"beauty":      0.035,
		"electronics": 0.02,
		"luxury":      0.015,
		"grocery":     0.04,
	}
)

// Sample is one synthetic campaign together with its observed
// engagement rate, the training target for the regression model.
type Sample struct {
	domain.CampaignFeatures
	EngagementRate float64
}

// Generator produces campaign samples from a seeded source so datasets
// are reproducible.
type Generator struct {
	r *rand.Rand
}

// New returns a generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewSource(seed))}
}

// Campaign draws one synthetic campaign.
func (g *Generator) Campaign() Sample {
	platform := platforms[g.r.Intn(len(platforms))]
	country := countries[g.r.Intn(len(countries))]
	category := categories[g.r.Intn(len(categories))]

	// Gamma(shape 2, scale 300) as a sum of two exponentials, scaled by
	// platform and clipped to a plausible budget range.
	spend := (g.r.ExpFloat64() + g.r.ExpFloat64()) * 300 * spendFactor[platform]
	spend = clamp(spend, 50, 20000)
	spend = math.Round(spend*100) / 100

	meanImpr := spend * impressionsPerDollar[platform]
	impressions := int64(g.r.NormFloat64()*0.25*meanImpr + meanImpr)
	if floor := int64(spend * 50); impressions < floor {
		impressions = floor
	}

	reach := int64(g.r.NormFloat64()*0.1*float64(impressions) + 0.7*float64(impressions))
	reach = int64(clamp(float64(reach), 0.3*float64(impressions), float64(impressions)))

	ctr := math.Max(ctrBase[platform]+g.r.NormFloat64()*0.003, 0.001)
	clicks := int64(float64(impressions) * ctr)

	convRate := math.Max(convBase[category]+g.r.NormFloat64()*0.01, 0.002)
	conversions := int64(float64(clicks) * convRate)

	engagement := 0.0
	if impressions > 0 {
		engagement = float64(clicks+conversions) / float64(impressions)
	}

	return Sample{
		CampaignFeatures: domain.CampaignFeatures{
			Platform:        platform,
			Country:         country,
			ProductCategory: category,
			Spend:           spend,
			Impressions:     impressions,
			Clicks:          clicks,
			Conversions:     conversions,
			Reach:           reach,
		},
		EngagementRate: engagement,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
