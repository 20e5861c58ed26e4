package service

import (
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/util"
	"mindscreen_backend/pkg/logger"
	"mindscreen_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ResponseStore is the slice of the response repository the scoring use case
// needs. ApplyScore is the single write path for score/risk_level.
type ResponseStore interface {
	FindByID(id uint) (*model.Response, error)
	ListAnswers(responseID uint) ([]model.Answer, error)
	ApplyScore(responseID uint, score float64, riskLevel string) (*model.Response, error)
}

// QuestionSource supplies the questionnaire and its questions for weight and
// metadata lookups.
type QuestionSource interface {
	FindByID(id uint) (*model.Questionnaire, error)
	ListQuestions(questionnaireID uint) ([]model.Question, error)
}

// ConfigResolver finds the single active scoring configuration for a
// questionnaire.
type ConfigResolver interface {
	Resolve(questionnaireID uint) (*model.ScoringConfig, error)
}

// HighRiskNotifier fans out an alert for a high-risk result. Delivery is
// best-effort; scoring never fails because a notification did.
type HighRiskNotifier interface {
	NotifyHighRisk(response *model.Response, questionnaire *model.Questionnaire) error
}

type ScoringService struct {
	Responses      ResponseStore
	Questionnaires QuestionSource
	Configs        ConfigResolver
	Notifier       HighRiskNotifier
}

func NewScoringService(responses ResponseStore, questionnaires QuestionSource, configs ConfigResolver, notifier HighRiskNotifier) *ScoringService {
	return &ScoringService{
		Responses:      responses,
		Questionnaires: questionnaires,
		Configs:        configs,
		Notifier:       notifier,
	}
}

// ScoreResult is what a scoring invocation returns. MaxScore and
// PassingScore are informational bounds copied from the config, not
// enforced.
type ScoreResult struct {
	Response     *model.Response   `json:"response"`
	Score        float64           `json:"score"`
	RiskLevel    scoring.RiskLevel `json:"riskLevel"`
	MaxScore     *float64          `json:"maxScore"`
	PassingScore *float64          `json:"passingScore"`
}

// ScoreResponse computes and persists the score and risk level for a
// submitted response. The stored response is only mutated after the whole
// computation succeeded, so a failure anywhere leaves it untouched.
// Re-invoking with unchanged answers and config yields the same result and
// simply overwrites the stored values.
func (s *ScoringService) ScoreResponse(responseID uint) (*ScoreResult, error) {
	resp, err := s.Responses.FindByID(responseID)
	if err != nil {
		return nil, err
	}

	answers, err := s.Responses.ListAnswers(responseID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, util.ErrNoAnswers
	}

	questions, err := s.Questionnaires.ListQuestions(resp.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Configs.Resolve(resp.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	method := scoring.Method(cfg.ScoringMethod)
	rules, err := scoring.ParseRules(method, cfg.Rules)
	if err != nil {
		return nil, err
	}

	score, err := scoring.ComputeScore(toScoringAnswers(answers), toScoringQuestions(questions), scoring.Config{
		Method: method,
		Rules:  rules,
	})
	if err != nil {
		return nil, err
	}

	level := scoring.Classify(score, rules.RiskLevels)

	updated, err := s.Responses.ApplyScore(responseID, score, string(level))
	if err != nil {
		return nil, err
	}

	monitoring.ScoredResponses.WithLabelValues(cfg.ScoringMethod, string(level)).Inc()

	if level == scoring.RiskHigh {
		s.notifyHighRisk(updated)
	}

	return &ScoreResult{
		Response:     updated,
		Score:        score,
		RiskLevel:    level,
		MaxScore:     cfg.MaxScore,
		PassingScore: cfg.PassingScore,
	}, nil
}

// notifyHighRisk is fire-and-forget: every failure is logged and swallowed.
// No dedup: scoring the same response high twice alerts twice.
func (s *ScoringService) notifyHighRisk(resp *model.Response) {
	monitoring.HighRiskAlerts.Inc()

	questionnaire, err := s.Questionnaires.FindByID(resp.QuestionnaireID)
	if err != nil {
		logger.Log.Warn("high-risk alert skipped: questionnaire lookup failed",
			zap.Uint("responseId", resp.ID), zap.Error(err))
		return
	}

	if err := s.Notifier.NotifyHighRisk(resp, questionnaire); err != nil {
		logger.Log.Warn("high-risk alert delivery failed",
			zap.Uint("responseId", resp.ID), zap.Error(err))
	}
}

func toScoringAnswers(answers []model.Answer) []scoring.Answer {
	out := make([]scoring.Answer, len(answers))
	for i, a := range answers {
		value, err := a.DecodeValue()
		if err != nil {
			// An undecodable value contributes through its precomputed score
			// or not at all.
			value = nil
		}
		out[i] = scoring.Answer{
			QuestionID: a.QuestionID,
			Value:      value,
			Score:      a.Score,
		}
	}
	return out
}

func toScoringQuestions(questions []model.Question) []scoring.Question {
	out := make([]scoring.Question, len(questions))
	for i, q := range questions {
		out[i] = scoring.Question{
			ID:            q.ID,
			ScoringWeight: q.ScoringWeight,
		}
	}
	return out
}
