package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	levels := &RiskLevels{Medium: f(10), High: f(15)}

	assert.Equal(t, RiskLow, Classify(9, levels))
	assert.Equal(t, RiskMedium, Classify(10, levels))
	assert.Equal(t, RiskMedium, Classify(14, levels))
	assert.Equal(t, RiskHigh, Classify(15, levels))
	assert.Equal(t, RiskHigh, Classify(40, levels))
}

func TestClassifyNoThresholds(t *testing.T) {
	assert.Equal(t, RiskLow, Classify(1000, nil))
	assert.Equal(t, RiskLow, Classify(1000, &RiskLevels{}))
}

func TestClassifyOnlyHigh(t *testing.T) {
	levels := &RiskLevels{High: f(20)}

	assert.Equal(t, RiskLow, Classify(19, levels))
	assert.Equal(t, RiskHigh, Classify(20, levels))
}

func TestClassifyCrossedThresholdsPreferHigh(t *testing.T) {
	// Misconfigured: high below medium. High still wins at or above its
	// threshold.
	levels := &RiskLevels{Medium: f(20), High: f(10)}

	assert.Equal(t, RiskLow, Classify(9, levels))
	assert.Equal(t, RiskHigh, Classify(15, levels))
	assert.Equal(t, RiskHigh, Classify(25, levels))
}
