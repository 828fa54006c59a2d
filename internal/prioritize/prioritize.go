// Package prioritize implements ICE and RICE feature prioritization scoring
// with single-feature and CSV batch modes.
package prioritize

import (
	"fmt"
	"math"
)

// ICE averages impact, confidence and ease (each 1-10) to two decimals.
func ICE(impact, confidence, ease float64) float64 {
	return round2((impact + confidence + ease) / 3)
}

// ICEPriority buckets an ICE score: ≥8 HIGH, ≥6 MEDIUM, ≥4 LOW, else VERY LOW.
func ICEPriority(score float64) string {
	switch {
	case score >= 8.0:
		return "HIGH"
	case score >= 6.0:
		return "MEDIUM"
	case score >= 4.0:
		return "LOW"
	default:
		return "VERY LOW"
	}
}

// ICECategory places a feature on the impact/ease matrix. A score of 6 on
// either axis counts as high.
func ICECategory(impact, ease float64) string {
	highImpact := impact >= 6
	highEase := ease >= 6
	switch {
	case highImpact && highEase:
		return "QUICK WIN"
	case highImpact:
		return "STRATEGIC BET"
	case highEase:
		return "FILL-IN"
	default:
		return "TIME SINK"
	}
}

// RICE computes reach*impact*confidence/effort where confidence is a
// percentage. Effort must be positive.
func RICE(reach, impact, confidence, effort float64) (float64, error) {
	if effort <= 0 {
		return 0, fmt.Errorf("effort must be > 0, got %g", effort)
	}
	return round2(reach * impact * (confidence / 100) / effort), nil
}

// RICEPriority buckets a RICE score: ≥1000 CRITICAL, ≥500 HIGH, ≥100 MEDIUM,
// else LOW.
func RICEPriority(score float64) string {
	switch {
	case score >= 1000:
		return "CRITICAL"
	case score >= 500:
		return "HIGH"
	case score >= 100:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
