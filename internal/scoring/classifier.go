package scoring

import "math"

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Classify maps a score onto a risk tier using the configured thresholds.
// High is evaluated before medium, so when thresholds are misconfigured with
// high <= medium the high tier wins; that is the defined tie-break. An
// absent threshold makes its tier unreachable.
func Classify(score float64, levels *RiskLevels) RiskLevel {
	medium, high := math.Inf(1), math.Inf(1)
	if levels != nil {
		if levels.Medium != nil {
			medium = *levels.Medium
		}
		if levels.High != nil {
			high = *levels.High
		}
	}

	switch {
	case score >= high:
		return RiskHigh
	case score >= medium:
		return RiskMedium
	default:
		return RiskLow
	}
}
