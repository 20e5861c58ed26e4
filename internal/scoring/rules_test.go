package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRulesUnknownMethod(t *testing.T) {
	_, err := ParseRules("median", nil)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestParseRulesMalformedJSON(t *testing.T) {
	_, err := ParseRules(MethodSum, []byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestParseRulesCustomRequiresQuestionScores(t *testing.T) {
	_, err := ParseRules(MethodCustom, []byte(`{"risk_levels":{"high":10}}`))
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestParseRulesCustom(t *testing.T) {
	raw := []byte(`{
		"question_scores": {
			"1": {"values": {"often": 3, "never": 0}, "default": 1}
		},
		"risk_levels": {"medium": 5, "high": 10}
	}`)

	rules, err := ParseRules(MethodCustom, raw)
	require.NoError(t, err)

	rule, ok := rules.QuestionScores["1"]
	require.True(t, ok)
	assert.Equal(t, 3.0, rule.Values["often"])
	require.NotNil(t, rule.Default)
	assert.Equal(t, 1.0, *rule.Default)

	require.NotNil(t, rules.RiskLevels)
	assert.Equal(t, 5.0, *rules.RiskLevels.Medium)
	assert.Equal(t, 10.0, *rules.RiskLevels.High)
}

func TestParseRulesEmptyDocument(t *testing.T) {
	rules, err := ParseRules(MethodSum, nil)
	require.NoError(t, err)
	assert.Nil(t, rules.RiskLevels)
}
