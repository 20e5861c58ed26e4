package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/util"
	"mindscreen_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const formCacheTTL = 5 * time.Minute

type QuestionnaireService struct {
	Repo  *repository.QuestionnaireRepository
	Redis *redis.Client
}

func NewQuestionnaireService(repo *repository.QuestionnaireRepository, rdb *redis.Client) *QuestionnaireService {
	return &QuestionnaireService{Repo: repo, Redis: rdb}
}

type QuestionnaireRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *QuestionnaireService) Create(orgID uint, req QuestionnaireRequest) (*model.Questionnaire, error) {
	q := &model.Questionnaire{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		ShareToken:     model.GenerateUUID(),
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionnaireService) Get(id uint) (*model.Questionnaire, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionnaireService) List(orgID uint, page, limit int) ([]model.Questionnaire, int64, error) {
	return s.Repo.ListByOrganization(orgID, page, limit)
}

func (s *QuestionnaireService) Update(id uint, req QuestionnaireRequest) (*model.Questionnaire, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	q.Title = req.Title
	q.Description = req.Description
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	s.invalidateFormCache(q.ShareToken)
	return q, nil
}

func (s *QuestionnaireService) Delete(id uint) error {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateFormCache(q.ShareToken)
	return nil
}

func (s *QuestionnaireService) SetPublished(id uint, published bool) (*model.Questionnaire, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	q.IsPublished = published
	if published {
		now := time.Now()
		q.PublishedAt = &now
	}
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	s.invalidateFormCache(q.ShareToken)
	return q, nil
}

type QuestionRequest struct {
	Type          model.QuestionType `json:"type" binding:"required"`
	Content       string             `json:"content" binding:"required"`
	Options       json.RawMessage    `json:"options"`
	ScoringWeight int                `json:"scoringWeight"`
	Required      bool               `json:"required"`
	Order         int                `json:"order"`
}

func (s *QuestionnaireService) CreateQuestion(questionnaireID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.Repo.FindByID(questionnaireID); err != nil {
		return nil, err
	}

	weight := req.ScoringWeight
	if weight < 1 {
		weight = 1
	}

	q := &model.Question{
		QuestionnaireID: questionnaireID,
		Type:            req.Type,
		Content:         req.Content,
		Options:         req.Options,
		ScoringWeight:   weight,
		Required:        req.Required,
		Order:           req.Order,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionnaireService) ListQuestions(questionnaireID uint) ([]model.Question, error) {
	return s.Repo.ListQuestions(questionnaireID)
}

func (s *QuestionnaireService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(id)
	if err != nil {
		return nil, err
	}

	q.Type = req.Type
	q.Content = req.Content
	q.Options = req.Options
	if req.ScoringWeight >= 1 {
		q.ScoringWeight = req.ScoringWeight
	}
	q.Required = req.Required
	q.Order = req.Order
	if err := s.Repo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionnaireService) DeleteQuestion(id uint) error {
	return s.Repo.DeleteQuestion(id)
}

// PublicForm is the respondent-facing shape of a published questionnaire.
// Option scores and weights are stripped so scoring rules never leak to the
// person filling the form in.
type PublicForm struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []PublicQuestion `json:"questions"`
}

type PublicQuestion struct {
	ID       uint               `json:"id"`
	Type     model.QuestionType `json:"type"`
	Content  string             `json:"content"`
	Options  []PublicOption     `json:"options,omitempty"`
	Required bool               `json:"required"`
	Order    int                `json:"order"`
}

type PublicOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetPublicForm serves the respondent form, cached in Redis per share token.
func (s *QuestionnaireService) GetPublicForm(shareToken string) (*PublicForm, error) {
	cacheKey := formCacheKey(shareToken)

	if s.Redis != nil {
		if raw, err := s.Redis.Get(context.Background(), cacheKey).Result(); err == nil {
			var form PublicForm
			if json.Unmarshal([]byte(raw), &form) == nil {
				return &form, nil
			}
		}
	}

	q, err := s.Repo.FindByShareToken(shareToken)
	if err != nil {
		return nil, err
	}
	if !q.IsPublished {
		return nil, util.ErrNotPublished
	}

	questions, err := s.Repo.ListQuestions(q.ID)
	if err != nil {
		return nil, err
	}

	form := &PublicForm{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Questions:   make([]PublicQuestion, 0, len(questions)),
	}
	for _, question := range questions {
		pq := PublicQuestion{
			ID:       question.ID,
			Type:     question.Type,
			Content:  question.Content,
			Required: question.Required,
			Order:    question.Order,
		}
		opts, err := question.DecodeOptions()
		if err != nil {
			logger.Log.Warn("skipping malformed question options",
				zap.Uint("questionId", question.ID), zap.Error(err))
		}
		for _, o := range opts {
			pq.Options = append(pq.Options, PublicOption{Value: o.Value, Label: o.Label})
		}
		form.Questions = append(form.Questions, pq)
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(form); err == nil {
			s.Redis.Set(context.Background(), cacheKey, raw, formCacheTTL)
		}
	}

	return form, nil
}

func (s *QuestionnaireService) invalidateFormCache(shareToken string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), formCacheKey(shareToken))
}

func formCacheKey(shareToken string) string {
	return fmt.Sprintf("questionnaire:form:%s", shareToken)
}
