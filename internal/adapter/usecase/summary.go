package usecase

import "advision/internal/core/domain"

// UnknownPlatform is the aggregation bucket for records whose platform
// was never set. A NULL platform column scans to the empty string, so
// empty and absent collapse into the same bucket, matching the
// behaviour of the system this service replaced.
const UnknownPlatform = "unknown"

// engagementAccum accumulates predicted engagement rates for one
// platform so the mean can be taken without materializing every value.
type engagementAccum struct {
	sum   float64
	count int
}

// Summarize reduces the full campaign history to aggregate statistics
// in a single pass. It is a pure function: no side effects, and
// permuting the input yields an identical result.
//
// Numeric semantics: missing numerics were already coerced to zero at
// the storage boundary, and those zeros participate in every sum. This
// can distort averages when nulls are common; it is a deliberate
// default-to-zero policy, not error suppression.
func Summarize(records []domain.CampaignRecord) domain.SummaryStatistics {
	// Empty history short-circuits to the identity summary rather than
	// running the general algorithm, which would divide by zero.
	if len(records) == 0 {
		return domain.SummaryStatistics{
			TotalCampaigns:     0,
			TotalSpend:         0.0,
			AvgCTR:             0.0,
			PlatformEngagement: map[string]float64{},
		}
	}

	var (
		totalSpend       float64
		totalImpressions int64
		totalClicks      int64
		perPlatform      = make(map[string]*engagementAccum)
	)
	for _, rec := range records {
		totalSpend += rec.Spend
		totalImpressions += rec.Impressions
		totalClicks += rec.Clicks

		platform := rec.Platform
		if platform == "" {
			platform = UnknownPlatform
		}
		acc, ok := perPlatform[platform]
		if !ok {
			acc = &engagementAccum{}
			perPlatform[platform] = acc
		}
		acc.sum += rec.PredictedEngagementRate
		acc.count++
	}

	// Ratio of sums, not a mean of per-campaign ratios. Negative
	// impression totals still divide; only an exact zero is guarded.
	avgCTR := 0.0
	if totalImpressions != 0 {
		avgCTR = float64(totalClicks) / float64(totalImpressions)
	}

	engagement := make(map[string]float64, len(perPlatform))
	for platform, acc := range perPlatform {
		if acc.count == 0 {
			engagement[platform] = 0.0
			continue
		}
		engagement[platform] = acc.sum / float64(acc.count)
	}

	return domain.SummaryStatistics{
		TotalCampaigns:     len(records),
		TotalSpend:         totalSpend,
		AvgCTR:             avgCTR,
		PlatformEngagement: engagement,
	}
}
