package synth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCampaignInvariants(t *testing.T) {
	gen := New(42)
	for i := 0; i < 500; i++ {
		s := gen.Campaign()
		require.Contains(t, platforms, s.Platform)
		require.Contains(t, countries, s.Country)
		require.Contains(t, categories, s.ProductCategory)
		require.GreaterOrEqual(t, s.Spend, 50.0)
		require.LessOrEqual(t, s.Spend, 20000.0)
		require.Positive(t, s.Impressions)
		require.LessOrEqual(t, s.Reach, s.Impressions)
		require.GreaterOrEqual(t, s.Clicks, int64(0))
		require.GreaterOrEqual(t, s.Conversions, int64(0))
		require.LessOrEqual(t, s.Clicks, s.Impressions)
		require.GreaterOrEqual(t, s.EngagementRate, 0.0)
	}
}

func TestCampaignReproducible(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Campaign(), b.Campaign())
	}
}
