package service

import (
	"encoding/json"
	"testing"

	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appliedScore struct {
	responseID uint
	score      float64
	riskLevel  string
}

type fakeResponseStore struct {
	response *model.Response
	answers  []model.Answer
	applied  []appliedScore
}

func (f *fakeResponseStore) FindByID(id uint) (*model.Response, error) {
	if f.response == nil || f.response.ID != id {
		return nil, util.ErrResponseNotFound
	}
	r := *f.response
	return &r, nil
}

func (f *fakeResponseStore) ListAnswers(responseID uint) ([]model.Answer, error) {
	return f.answers, nil
}

func (f *fakeResponseStore) ApplyScore(responseID uint, score float64, riskLevel string) (*model.Response, error) {
	f.applied = append(f.applied, appliedScore{responseID, score, riskLevel})
	updated := *f.response
	updated.Score = &score
	updated.RiskLevel = &riskLevel
	return &updated, nil
}

type fakeQuestionSource struct {
	questionnaire *model.Questionnaire
	questions     []model.Question
}

func (f *fakeQuestionSource) FindByID(id uint) (*model.Questionnaire, error) {
	if f.questionnaire == nil {
		return nil, util.ErrQuestionnaireNotFound
	}
	return f.questionnaire, nil
}

func (f *fakeQuestionSource) ListQuestions(questionnaireID uint) ([]model.Question, error) {
	return f.questions, nil
}

type fakeResolver struct {
	config *model.ScoringConfig
	err    error
}

func (f *fakeResolver) Resolve(questionnaireID uint) (*model.ScoringConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) NotifyHighRisk(resp *model.Response, q *model.Questionnaire) error {
	f.calls++
	return f.err
}

func rawJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func newScoringFixture(answers []model.Answer, cfg *model.ScoringConfig) (*ScoringService, *fakeResponseStore, *fakeNotifier) {
	store := &fakeResponseStore{
		response: &model.Response{BaseModel: model.BaseModel{ID: 1}, QuestionnaireID: 10},
		answers:  answers,
	}
	source := &fakeQuestionSource{
		questionnaire: &model.Questionnaire{BaseModel: model.BaseModel{ID: 10}, OrganizationID: 5, Title: "PHQ-9"},
		questions: []model.Question{
			{BaseModel: model.BaseModel{ID: 1}, ScoringWeight: 1},
			{BaseModel: model.BaseModel{ID: 2}, ScoringWeight: 1},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewScoringService(store, source, &fakeResolver{config: cfg}, notifier)
	return svc, store, notifier
}

func numAnswer(t *testing.T, questionID uint, v float64) model.Answer {
	return model.Answer{QuestionID: questionID, Value: rawJSON(t, v)}
}

func TestScoreResponseSum(t *testing.T) {
	cfg := &model.ScoringConfig{
		ScoringMethod: "sum",
		Rules:         rawJSON(t, map[string]interface{}{"risk_levels": map[string]float64{"medium": 5, "high": 10}}),
	}
	svc, store, notifier := newScoringFixture([]model.Answer{
		numAnswer(t, 1, 2),
		numAnswer(t, 2, 4),
	}, cfg)

	result, err := svc.ScoreResponse(1)
	require.NoError(t, err)

	assert.Equal(t, 6.0, result.Score)
	assert.Equal(t, scoring.RiskMedium, result.RiskLevel)
	require.Len(t, store.applied, 1)
	assert.Equal(t, appliedScore{1, 6.0, "medium"}, store.applied[0])
	assert.Equal(t, 0, notifier.calls)
}

func TestScoreResponseHighRiskNotifiesOnce(t *testing.T) {
	cfg := &model.ScoringConfig{
		ScoringMethod: "sum",
		Rules:         rawJSON(t, map[string]interface{}{"risk_levels": map[string]float64{"high": 5}}),
	}
	svc, _, notifier := newScoringFixture([]model.Answer{numAnswer(t, 1, 9)}, cfg)

	result, err := svc.ScoreResponse(1)
	require.NoError(t, err)

	assert.Equal(t, scoring.RiskHigh, result.RiskLevel)
	assert.Equal(t, 1, notifier.calls)
}

func TestScoreResponseNotifierFailureSwallowed(t *testing.T) {
	cfg := &model.ScoringConfig{
		ScoringMethod: "sum",
		Rules:         rawJSON(t, map[string]interface{}{"risk_levels": map[string]float64{"high": 5}}),
	}
	svc, store, notifier := newScoringFixture([]model.Answer{numAnswer(t, 1, 9)}, cfg)
	notifier.err = assert.AnError

	result, err := svc.ScoreResponse(1)
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.Score)
	assert.Equal(t, scoring.RiskHigh, result.RiskLevel)
	require.Len(t, store.applied, 1)
	assert.Equal(t, 1, notifier.calls)
}

func TestScoreResponseNotFound(t *testing.T) {
	cfg := &model.ScoringConfig{ScoringMethod: "sum"}
	svc, store, _ := newScoringFixture([]model.Answer{numAnswer(t, 1, 1)}, cfg)

	_, err := svc.ScoreResponse(99)
	assert.ErrorIs(t, err, util.ErrResponseNotFound)
	assert.Empty(t, store.applied)
}

func TestScoreResponseEmptyAnswers(t *testing.T) {
	cfg := &model.ScoringConfig{ScoringMethod: "sum"}
	svc, store, _ := newScoringFixture(nil, cfg)

	_, err := svc.ScoreResponse(1)
	assert.ErrorIs(t, err, util.ErrNoAnswers)
	assert.Empty(t, store.applied)
}

func TestScoreResponseNoActiveConfig(t *testing.T) {
	svc, store, _ := newScoringFixture([]model.Answer{numAnswer(t, 1, 1)}, nil)
	svc.Configs = &fakeResolver{err: util.ErrScoringConfigNotFound}

	_, err := svc.ScoreResponse(1)
	assert.ErrorIs(t, err, util.ErrScoringConfigNotFound)
	assert.Empty(t, store.applied)
}

func TestScoreResponseUnknownMethodLeavesResponseUntouched(t *testing.T) {
	cfg := &model.ScoringConfig{ScoringMethod: "median"}
	svc, store, notifier := newScoringFixture([]model.Answer{numAnswer(t, 1, 1)}, cfg)

	_, err := svc.ScoreResponse(1)
	assert.ErrorIs(t, err, scoring.ErrUnknownMethod)
	assert.Empty(t, store.applied)
	assert.Equal(t, 0, notifier.calls)
}

func TestScoreResponseRescoringOverwrites(t *testing.T) {
	cfg := &model.ScoringConfig{
		ScoringMethod: "sum",
		Rules:         rawJSON(t, map[string]interface{}{"risk_levels": map[string]float64{"medium": 5}}),
	}
	svc, store, _ := newScoringFixture([]model.Answer{numAnswer(t, 1, 6)}, cfg)

	first, err := svc.ScoreResponse(1)
	require.NoError(t, err)
	second, err := svc.ScoreResponse(1)
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	require.Len(t, store.applied, 2)
	assert.Equal(t, store.applied[0], store.applied[1])
}

func TestScoreResponseWeightedAverage(t *testing.T) {
	cfg := &model.ScoringConfig{ScoringMethod: "weighted_average"}
	store := &fakeResponseStore{
		response: &model.Response{BaseModel: model.BaseModel{ID: 1}, QuestionnaireID: 10},
		answers: []model.Answer{
			numAnswer(t, 1, 3),
			numAnswer(t, 2, 6),
		},
	}
	source := &fakeQuestionSource{
		questionnaire: &model.Questionnaire{BaseModel: model.BaseModel{ID: 10}},
		questions: []model.Question{
			{BaseModel: model.BaseModel{ID: 1}, ScoringWeight: 2},
			{BaseModel: model.BaseModel{ID: 2}, ScoringWeight: 1},
		},
	}
	svc := NewScoringService(store, source, &fakeResolver{config: cfg}, &fakeNotifier{})

	result, err := svc.ScoreResponse(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.Score)
}
