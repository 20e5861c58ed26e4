package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestComputeScoreSum(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: float64(2)},
		{QuestionID: 2, Value: float64(3)},
		{QuestionID: 3, Value: "4"},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodSum})
	require.NoError(t, err)
	assert.Equal(t, 9.0, score)
}

func TestComputeScoreSumUsesPrecomputedFallback(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: "often", Score: f(3)},
		{QuestionID: 2, Value: float64(2)},
		{QuestionID: 3, Value: "no idea"},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodSum})
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
}

func TestComputeScoreSumPermissiveStrings(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: "4abc"},
		{QuestionID: 2, Value: " 2.5xyz"},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodSum})
	require.NoError(t, err)
	assert.Equal(t, 6.5, score)
}

func TestComputeScoreAverage(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: float64(2)},
		{QuestionID: 2, Value: float64(4)},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodAverage})
	require.NoError(t, err)
	assert.Equal(t, 3.0, score)
}

func TestComputeScoreAverageRounds(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: float64(1)},
		{QuestionID: 2, Value: float64(2)},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodAverage})
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
}

func TestComputeScoreAverageIgnoresNonScorable(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: float64(4)},
		{QuestionID: 2, Value: "free text"},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodAverage})
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
}

func TestComputeScoreAverageNoScorableAnswers(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: "free text"},
		{QuestionID: 2, Value: nil},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodAverage})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestComputeScoreWeightedAverage(t *testing.T) {
	questions := []Question{
		{ID: 1, ScoringWeight: 2},
		{ID: 2, ScoringWeight: 1},
	}
	answers := []Answer{
		{QuestionID: 1, Value: float64(3)},
		{QuestionID: 2, Value: float64(6)},
	}

	// (3*2 + 6*1) / 3 = 4
	score, err := ComputeScore(answers, questions, Config{Method: MethodWeightedAverage})
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
}

func TestComputeScoreWeightedAverageSkipsUnknownQuestions(t *testing.T) {
	questions := []Question{{ID: 1, ScoringWeight: 1}}
	answers := []Answer{
		{QuestionID: 1, Value: float64(5)},
		{QuestionID: 99, Value: float64(100)},
	}

	score, err := ComputeScore(answers, questions, Config{Method: MethodWeightedAverage})
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
}

func TestComputeScoreWeightedAverageZeroTotalWeight(t *testing.T) {
	questions := []Question{{ID: 1, ScoringWeight: 0}}
	answers := []Answer{{QuestionID: 1, Value: float64(5)}}

	score, err := ComputeScore(answers, questions, Config{Method: MethodWeightedAverage})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestComputeScoreCustom(t *testing.T) {
	rules := Rules{
		QuestionScores: map[string]QuestionRule{
			"1": {Values: map[string]float64{"often": 3, "never": 0}},
			"2": {Values: map[string]float64{"yes": 5}, Default: f(1)},
		},
	}
	answers := []Answer{
		{QuestionID: 1, Value: "often"},
		{QuestionID: 2, Value: "maybe"},
		{QuestionID: 3, Value: "unlisted question"},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodCustom, Rules: rules})
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
}

func TestComputeScoreCustomNumericAndBoolKeys(t *testing.T) {
	rules := Rules{
		QuestionScores: map[string]QuestionRule{
			"1": {Values: map[string]float64{"4": 2}},
			"2": {Values: map[string]float64{"true": 3}},
		},
	}
	answers := []Answer{
		{QuestionID: 1, Value: float64(4)},
		{QuestionID: 2, Value: true},
	}

	score, err := ComputeScore(answers, nil, Config{Method: MethodCustom, Rules: rules})
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
}

func TestComputeScoreUnknownMethod(t *testing.T) {
	_, err := ComputeScore(nil, nil, Config{Method: "median"})
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestComputeScoreEmptyAnswersSum(t *testing.T) {
	score, err := ComputeScore(nil, nil, Config{Method: MethodSum})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}
