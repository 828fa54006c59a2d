package cro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 3.0, ConversionRate(150, 5000))
	assert.Equal(t, 2.5, ConversionRate(125, 5000))
	assert.Equal(t, 0.0, ConversionRate(0, 5000))

	// Zero visitors is not an error, just a zero rate.
	assert.Equal(t, 0.0, ConversionRate(10, 0))

	// Rounds to two decimals.
	assert.Equal(t, 33.33, ConversionRate(1, 3))
}

func TestRateBenchmark(t *testing.T) {
	assert.Equal(t, "Good", RateBenchmark(3.0))
	assert.Equal(t, "Needs improvement", RateBenchmark(2.5))
	assert.Equal(t, "Needs improvement", RateBenchmark(1.0))
}

func TestCalculateRevenueImpact(t *testing.T) {
	impact := CalculateRevenueImpact(2.5, 3.5, 10000, 50)

	assert.Equal(t, 12500.0, impact.CurrentMonthlyRevenue)
	assert.Equal(t, 17500.0, impact.ImprovedMonthlyRevenue)
	assert.Equal(t, 5000.0, impact.AdditionalMonthlyRevenue)
	assert.Equal(t, 60000.0, impact.AnnualRevenueIncrease)
	assert.Equal(t, 100.0, impact.AdditionalConversions)
	assert.Equal(t, 40.0, impact.PercentageIncrease)
}

func TestCalculateSignificance(t *testing.T) {
	result := CalculateSignificance(5000, 125, 5000, 175)

	assert.Equal(t, 2.5, result.ControlRate)
	assert.Equal(t, 3.5, result.VariantRate)
	assert.Equal(t, 1.0, result.AbsoluteDifference)
	assert.Equal(t, 40.0, result.RelativeDifference)
	assert.True(t, result.IsSignificant)
	assert.Equal(t, "95%", result.ConfidenceLevel)
	assert.Equal(t, "Deploy variant", result.Recommendation)
	assert.Greater(t, result.ZScore, zAlpha95)
}

func TestCalculateSignificanceNotSignificant(t *testing.T) {
	result := CalculateSignificance(1000, 25, 1000, 27)

	assert.False(t, result.IsSignificant)
	assert.Equal(t, "< 95%", result.ConfidenceLevel)
	assert.Equal(t, "Continue testing", result.Recommendation)
}

func TestCalculateSignificanceZeroConversions(t *testing.T) {
	// No conversions on either side: pooled probability 0, SE 0, z stays 0.
	result := CalculateSignificance(1000, 0, 1000, 0)

	assert.Equal(t, 0.0, result.ZScore)
	assert.False(t, result.IsSignificant)
	assert.Equal(t, 0.0, result.RelativeDifference)
}

func TestCalculateSampleSize(t *testing.T) {
	result := CalculateSampleSize(2.5, 20, 95, 80)

	assert.Equal(t, result.VisitorsPerVariation*2, result.TotalVisitorsNeeded)
	assert.Greater(t, result.VisitorsPerVariation, 0)
	assert.Equal(t, 2.5, result.BaselineRate)
	assert.Equal(t, 3.0, result.ExpectedImprovedRate)
	assert.Equal(t, 20.0, result.MinimumDetectableEffect)

	// Higher confidence demands more traffic.
	stricter := CalculateSampleSize(2.5, 20, 99, 90)
	assert.Greater(t, stricter.VisitorsPerVariation, result.VisitorsPerVariation)
}

func TestAnalyzeFunnel(t *testing.T) {
	stages := []Stage{
		{Name: "A", Visitors: 10000},
		{Name: "B", Visitors: 5000},
		{Name: "C", Visitors: 500},
	}

	result, err := AnalyzeFunnel(stages)
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.OverallConversionRate)
	assert.Equal(t, 9500, result.TotalDropOff)

	// A→B loses 5000 visitors, B→C loses 4500: A→B is the biggest drop.
	assert.Equal(t, "A → B", result.BiggestDropOffPoint)
	assert.Equal(t, 50.0, result.BiggestDropOffRate)

	require.Len(t, result.Stages, 3)
	assert.Equal(t, 100.0, result.Stages[0].ConversionFromPrevious)
	assert.Equal(t, 0, result.Stages[0].DropOffFromPrevious)
	assert.Equal(t, 50.0, result.Stages[1].ConversionFromPrevious)
	assert.Equal(t, 5000, result.Stages[1].DropOffFromPrevious)
	assert.Equal(t, 10.0, result.Stages[2].ConversionFromPrevious)
	assert.Equal(t, 5.0, result.Stages[2].ConversionFromStart)
}

func TestAnalyzeFunnelBiggestDropFirstTransition(t *testing.T) {
	stages := []Stage{
		{Name: "Landing", Visitors: 10000},
		{Name: "Signup", Visitors: 1000},
		{Name: "Purchase", Visitors: 900},
	}

	result, err := AnalyzeFunnel(stages)
	require.NoError(t, err)
	assert.Equal(t, "Landing → Signup", result.BiggestDropOffPoint)
	assert.Equal(t, 90.0, result.BiggestDropOffRate)
	assert.Equal(t, "Good", result.FunnelEfficiency)
}

func TestAnalyzeFunnelTooFewStages(t *testing.T) {
	_, err := AnalyzeFunnel([]Stage{{Name: "Only", Visitors: 100}})
	require.Error(t, err)

	_, err = AnalyzeFunnel(nil)
	require.Error(t, err)
}

func TestICEScore(t *testing.T) {
	assert.Equal(t, 8.0, ICEScore(8, 7, 9))
	assert.Equal(t, "High", ICEPriority(8.0))
	assert.Equal(t, "Medium", ICEPriority(6.0))
	assert.Equal(t, "Low", ICEPriority(5.0))

	assert.Equal(t, 5.67, ICEScore(5, 6, 6))
}
