package service

import (
	"encoding/json"
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/util"
	"mindscreen_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type ResponseService struct {
	Repo   *repository.ResponseRepository
	Quests *repository.QuestionnaireRepository
	Scorer *ScoringService
}

func NewResponseService(repo *repository.ResponseRepository, quests *repository.QuestionnaireRepository, scorer *ScoringService) *ResponseService {
	return &ResponseService{Repo: repo, Quests: quests, Scorer: scorer}
}

type SubmitAnswer struct {
	QuestionID uint            `json:"questionId" binding:"required"`
	Value      json.RawMessage `json:"value"`
}

type SubmitRequest struct {
	RespondentName  string         `json:"respondentName"`
	RespondentEmail string         `json:"respondentEmail"`
	Answers         []SubmitAnswer `json:"answers" binding:"required"`
}

// Submit stores a respondent submission against a published questionnaire and
// then scores it. A questionnaire without an active scoring config is still
// accepted; the response simply stays unscored.
func (s *ResponseService) Submit(shareToken string, req SubmitRequest) (*model.Response, error) {
	q, err := s.Quests.FindByShareToken(shareToken)
	if err != nil {
		return nil, err
	}
	if !q.IsPublished {
		return nil, util.ErrNotPublished
	}

	questions, err := s.Quests.ListQuestions(q.ID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	resp := &model.Response{
		QuestionnaireID: q.ID,
		RespondentName:  req.RespondentName,
		RespondentEmail: req.RespondentEmail,
		SubmittedAt:     time.Now(),
	}
	for _, a := range req.Answers {
		question, ok := byID[a.QuestionID]
		if !ok {
			return nil, util.ErrQuestionNotFound
		}
		answer := model.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		}
		answer.Score = precomputeAnswerScore(question, a.Value)
		resp.Answers = append(resp.Answers, answer)
	}

	if err := s.Repo.Create(resp); err != nil {
		return nil, err
	}

	if _, err := s.Scorer.ScoreResponse(resp.ID); err != nil {
		if errors.Is(err, util.ErrScoringConfigNotFound) || errors.Is(err, util.ErrNoAnswers) {
			return s.Repo.FindByIDWithAnswers(resp.ID)
		}
		logger.Log.Warn("auto-scoring after submit failed",
			zap.Uint("responseId", resp.ID), zap.Error(err))
		return s.Repo.FindByIDWithAnswers(resp.ID)
	}

	return s.Repo.FindByIDWithAnswers(resp.ID)
}

// precomputeAnswerScore resolves the submitted value against the question's
// option list and returns option score x question weight. Unresolvable values
// (free text, malformed options, unknown choice) yield nil; multi-choice
// values sum the scores of every matched option.
func precomputeAnswerScore(q *model.Question, raw json.RawMessage) *float64 {
	opts, err := q.DecodeOptions()
	if err != nil || len(opts) == 0 {
		return nil
	}

	var v interface{}
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return nil
	}

	scores := make(map[string]float64, len(opts))
	for _, o := range opts {
		scores[o.Value] = o.Score
	}

	weight := float64(q.ScoringWeight)
	if values, ok := v.([]interface{}); ok {
		total, matched := 0.0, false
		for _, e := range values {
			if s, ok := scores[scoring.ValueKey(e)]; ok {
				total += s
				matched = true
			}
		}
		if !matched {
			return nil
		}
		total *= weight
		return &total
	}

	if s, ok := scores[scoring.ValueKey(v)]; ok {
		s *= weight
		return &s
	}
	return nil
}

func (s *ResponseService) List(questionnaireID uint, page, limit int) ([]model.Response, int64, error) {
	return s.Repo.ListByQuestionnaire(questionnaireID, page, limit)
}

func (s *ResponseService) GetDetail(id uint) (*model.Response, error) {
	return s.Repo.FindByIDWithAnswers(id)
}

func (s *ResponseService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
