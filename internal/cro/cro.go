package cro

import (
	"fmt"
	"math"
)

// Z-scores used by the significance and sample size calculations.
const (
	zAlpha95 = 1.96
	zAlpha99 = 2.576
	zBeta80  = 0.84
	zBeta90  = 1.036
)

// ConversionRate returns the conversion rate as a percentage rounded to two
// decimals. Zero visitors yields a rate of zero rather than an error.
func ConversionRate(conversions, visitors int) float64 {
	if visitors == 0 {
		return 0
	}
	return round2(float64(conversions) / float64(visitors) * 100)
}

// RateBenchmark classifies a conversion rate against the common 2.5% benchmark.
func RateBenchmark(rate float64) string {
	if rate > 2.5 {
		return "Good"
	}
	return "Needs improvement"
}

// RevenueImpact projects the revenue effect of lifting a conversion rate.
type RevenueImpact struct {
	CurrentMonthlyRevenue    float64 `json:"current_monthly_revenue"`
	ImprovedMonthlyRevenue   float64 `json:"improved_monthly_revenue"`
	AdditionalMonthlyRevenue float64 `json:"additional_monthly_revenue"`
	AnnualRevenueIncrease    float64 `json:"annual_revenue_increase"`
	AdditionalConversions    float64 `json:"additional_conversions_per_month"`
	PercentageIncrease       float64 `json:"percentage_increase"`
}

// CalculateRevenueImpact compares current and improved conversion rates
// (percentages) over a monthly visitor volume at a given average order value.
func CalculateRevenueImpact(currentRate, improvedRate float64, monthlyVisitors int, avgOrderValue float64) RevenueImpact {
	currentConversions := currentRate / 100 * float64(monthlyVisitors)
	improvedConversions := improvedRate / 100 * float64(monthlyVisitors)
	additionalConversions := improvedConversions - currentConversions

	currentRevenue := currentConversions * avgOrderValue
	improvedRevenue := improvedConversions * avgOrderValue
	additionalRevenue := improvedRevenue - currentRevenue

	var pctIncrease float64
	if currentRate != 0 {
		pctIncrease = round1((improvedRate - currentRate) / currentRate * 100)
	}

	return RevenueImpact{
		CurrentMonthlyRevenue:    round2(currentRevenue),
		ImprovedMonthlyRevenue:   round2(improvedRevenue),
		AdditionalMonthlyRevenue: round2(additionalRevenue),
		AnnualRevenueIncrease:    round2(additionalRevenue * 12),
		AdditionalConversions:    math.Round(additionalConversions),
		PercentageIncrease:       pctIncrease,
	}
}

// Significance holds the result of a two-proportion z-test over an A/B split.
type Significance struct {
	ControlRate        float64 `json:"control_rate"`
	VariantRate        float64 `json:"variant_rate"`
	AbsoluteDifference float64 `json:"absolute_difference"`
	RelativeDifference float64 `json:"relative_difference"`
	ZScore             float64 `json:"z_score"`
	IsSignificant      bool    `json:"is_significant"`
	ConfidenceLevel    string  `json:"confidence_level"`
	Recommendation     string  `json:"recommendation"`
}

// CalculateSignificance runs a pooled two-proportion z-test on A/B test
// results. |z| > 1.96 is treated as significant at the 95% level.
func CalculateSignificance(visitorsA, conversionsA, visitorsB, conversionsB int) Significance {
	rateA := ConversionRate(conversionsA, visitorsA) / 100
	rateB := ConversionRate(conversionsB, visitorsB) / 100

	pooled := float64(conversionsA+conversionsB) / float64(visitorsA+visitorsB)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(visitorsA) + 1/float64(visitorsB)))

	var z float64
	if se != 0 {
		z = (rateB - rateA) / se
	}

	significant := math.Abs(z) > zAlpha95
	confidence := "< 95%"
	if significant {
		confidence = "95%"
	}

	var relative float64
	if rateA > 0 {
		relative = round1((rateB - rateA) / rateA * 100)
	}

	recommendation := "Continue testing"
	if significant {
		if rateB > rateA {
			recommendation = "Deploy variant"
		} else {
			recommendation = "Stick with control"
		}
	}

	return Significance{
		ControlRate:        round2(rateA * 100),
		VariantRate:        round2(rateB * 100),
		AbsoluteDifference: round2((rateB - rateA) * 100),
		RelativeDifference: relative,
		ZScore:             round3(z),
		IsSignificant:      significant,
		ConfidenceLevel:    confidence,
		Recommendation:     recommendation,
	}
}

// SampleSize describes the traffic required to detect a given effect.
type SampleSize struct {
	VisitorsPerVariation    int     `json:"visitors_per_variation"`
	TotalVisitorsNeeded     int     `json:"total_visitors_needed"`
	ConversionsPerVariation int     `json:"conversions_needed_per_variation"`
	BaselineRate            float64 `json:"baseline_rate"`
	ExpectedImprovedRate    float64 `json:"expected_improved_rate"`
	MinimumDetectableEffect float64 `json:"minimum_detectable_effect"`
	ConfidenceLevel         float64 `json:"confidence_level"`
	StatisticalPower        float64 `json:"statistical_power"`
}

// CalculateSampleSize estimates per-variation sample size for an A/B test.
// baselineRate and mde are percentages; confidence 95 or 99, power 80 or 90.
func CalculateSampleSize(baselineRate, mde, confidence, power float64) SampleSize {
	zAlpha := zAlpha99
	if confidence == 95 {
		zAlpha = zAlpha95
	}
	zBeta := zBeta90
	if power == 80 {
		zBeta = zBeta80
	}

	p1 := baselineRate / 100
	p2 := p1 * (1 + mde/100)

	numerator := math.Pow(zAlpha+zBeta, 2) * (p1*(1-p1) + p2*(1-p2))
	denominator := math.Pow(p2-p1, 2)
	n := int(numerator / denominator)

	return SampleSize{
		VisitorsPerVariation:    n,
		TotalVisitorsNeeded:     n * 2,
		ConversionsPerVariation: int(float64(n) * (p1 + p2) / 2),
		BaselineRate:            baselineRate,
		ExpectedImprovedRate:    round2(p2 * 100),
		MinimumDetectableEffect: mde,
		ConfidenceLevel:         confidence,
		StatisticalPower:        power,
	}
}

// Stage is a single funnel step. Order within a funnel is significant: the
// drop-off for a stage is computed against the stage immediately before it.
type Stage struct {
	Name     string `json:"name"`
	Visitors int    `json:"visitors"`
}

// StageAnalysis reports the conversion behavior of a single funnel stage.
type StageAnalysis struct {
	Stage                  string  `json:"stage"`
	Visitors               int     `json:"visitors"`
	ConversionFromPrevious float64 `json:"conversion_from_previous"`
	DropOffFromPrevious    int     `json:"drop_off_from_previous"`
	ConversionFromStart    float64 `json:"conversion_from_start"`
}

// FunnelAnalysis is the full funnel report.
type FunnelAnalysis struct {
	Stages                []StageAnalysis `json:"stages"`
	OverallConversionRate float64         `json:"overall_conversion_rate"`
	TotalDropOff          int             `json:"total_drop_off"`
	BiggestDropOffPoint   string          `json:"biggest_drop_off_point"`
	BiggestDropOffRate    float64         `json:"biggest_drop_off_rate"`
	FunnelEfficiency      string          `json:"funnel_efficiency"`
}

// AnalyzeFunnel computes stage-by-stage conversion and identifies the worst
// transition. Funnels need at least two stages.
func AnalyzeFunnel(stages []Stage) (*FunnelAnalysis, error) {
	if len(stages) < 2 {
		return nil, fmt.Errorf("need at least 2 funnel stages, got %d", len(stages))
	}

	total := stages[0].Visitors
	analysis := make([]StageAnalysis, 0, len(stages))

	for i, stage := range stages {
		sa := StageAnalysis{
			Stage:               stage.Name,
			Visitors:            stage.Visitors,
			ConversionFromStart: ConversionRate(stage.Visitors, total),
		}
		if i == 0 {
			sa.ConversionFromPrevious = 100.0
		} else {
			prev := stages[i-1].Visitors
			sa.ConversionFromPrevious = ConversionRate(stage.Visitors, prev)
			sa.DropOffFromPrevious = prev - stage.Visitors
		}
		analysis = append(analysis, sa)
	}

	final := stages[len(stages)-1].Visitors
	overall := ConversionRate(final, total)

	// The biggest drop-off is the transition that loses the most visitors.
	var biggestPoint string
	var biggestLoss int
	var biggestRate float64
	for i := 1; i < len(analysis); i++ {
		if analysis[i].DropOffFromPrevious > biggestLoss {
			biggestLoss = analysis[i].DropOffFromPrevious
			biggestRate = 100 - analysis[i].ConversionFromPrevious
			biggestPoint = analysis[i-1].Stage + " → " + analysis[i].Stage
		}
	}

	efficiency := "Needs improvement"
	if overall > 5 {
		efficiency = "Good"
	}

	return &FunnelAnalysis{
		Stages:                analysis,
		OverallConversionRate: overall,
		TotalDropOff:          total - final,
		BiggestDropOffPoint:   biggestPoint,
		BiggestDropOffRate:    round2(biggestRate),
		FunnelEfficiency:      efficiency,
	}, nil
}

// ICEScore averages impact, confidence and ease (each 1-10) to two decimals.
func ICEScore(impact, confidence, ease int) float64 {
	return round2(float64(impact+confidence+ease) / 3)
}

// ICEPriority buckets an ICE score into High (>7), Medium (>5) or Low.
func ICEPriority(score float64) string {
	switch {
	case score > 7:
		return "High"
	case score > 5:
		return "Medium"
	default:
		return "Low"
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
