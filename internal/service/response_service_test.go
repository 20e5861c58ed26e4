package service

import (
	"encoding/json"
	"testing"

	"mindscreen_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceQuestion(weight int) *model.Question {
	options, _ := json.Marshal([]model.QuestionOption{
		{Value: "never", Label: "Never", Score: 0},
		{Value: "sometimes", Label: "Sometimes", Score: 1},
		{Value: "often", Label: "Often", Score: 3},
	})
	return &model.Question{
		Type:          model.TypeSingleChoice,
		Options:       options,
		ScoringWeight: weight,
	}
}

func TestPrecomputeAnswerScoreSingleChoice(t *testing.T) {
	got := precomputeAnswerScore(choiceQuestion(1), json.RawMessage(`"often"`))
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)
}

func TestPrecomputeAnswerScoreAppliesWeight(t *testing.T) {
	got := precomputeAnswerScore(choiceQuestion(2), json.RawMessage(`"sometimes"`))
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got)
}

func TestPrecomputeAnswerScoreMultipleChoice(t *testing.T) {
	got := precomputeAnswerScore(choiceQuestion(1), json.RawMessage(`["sometimes","often"]`))
	require.NotNil(t, got)
	assert.Equal(t, 4.0, *got)
}

func TestPrecomputeAnswerScoreUnknownChoice(t *testing.T) {
	assert.Nil(t, precomputeAnswerScore(choiceQuestion(1), json.RawMessage(`"rarely"`)))
}

func TestPrecomputeAnswerScoreNoOptions(t *testing.T) {
	q := &model.Question{Type: model.TypeText, ScoringWeight: 1}
	assert.Nil(t, precomputeAnswerScore(q, json.RawMessage(`"free text"`)))
}

func TestPrecomputeAnswerScoreMalformedValue(t *testing.T) {
	assert.Nil(t, precomputeAnswerScore(choiceQuestion(1), json.RawMessage(`{broken`)))
	assert.Nil(t, precomputeAnswerScore(choiceQuestion(1), nil))
}

func TestPrecomputeAnswerScoreNumericOptionValues(t *testing.T) {
	options, _ := json.Marshal([]model.QuestionOption{
		{Value: "0", Score: 0},
		{Value: "3", Score: 3},
	})
	q := &model.Question{Type: model.TypeRating, Options: options, ScoringWeight: 1}

	got := precomputeAnswerScore(q, json.RawMessage(`3`))
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)
}
