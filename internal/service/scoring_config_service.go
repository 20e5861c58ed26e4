package service

import (
	"encoding/json"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/util"
)

type ScoringConfigService struct {
	Repo *repository.ScoringConfigRepository
}

func NewScoringConfigService(repo *repository.ScoringConfigRepository) *ScoringConfigService {
	return &ScoringConfigService{Repo: repo}
}

type ScoringConfigRequest struct {
	Name          string          `json:"name"`
	ScoringMethod string          `json:"scoringMethod" binding:"required"`
	Rules         json.RawMessage `json:"rules"`
	MaxScore      *float64        `json:"maxScore"`
	PassingScore  *float64        `json:"passingScore"`
}

// Create validates the rule document against its method before anything is
// stored, so corrupt configs are rejected at write time.
func (s *ScoringConfigService) Create(questionnaireID uint, req ScoringConfigRequest) (*model.ScoringConfig, error) {
	if _, err := scoring.ParseRules(scoring.Method(req.ScoringMethod), req.Rules); err != nil {
		return nil, err
	}

	c := &model.ScoringConfig{
		QuestionnaireID: questionnaireID,
		Name:            req.Name,
		ScoringMethod:   req.ScoringMethod,
		Rules:           req.Rules,
		MaxScore:        req.MaxScore,
		PassingScore:    req.PassingScore,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ScoringConfigService) Update(id uint, req ScoringConfigRequest) (*model.ScoringConfig, error) {
	if _, err := scoring.ParseRules(scoring.Method(req.ScoringMethod), req.Rules); err != nil {
		return nil, err
	}

	c, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.ScoringMethod = req.ScoringMethod
	c.Rules = req.Rules
	c.MaxScore = req.MaxScore
	c.PassingScore = req.PassingScore
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ScoringConfigService) List(questionnaireID uint) ([]model.ScoringConfig, error) {
	return s.Repo.ListByQuestionnaire(questionnaireID)
}

func (s *ScoringConfigService) Get(id uint) (*model.ScoringConfig, error) {
	return s.Repo.FindByID(id)
}

func (s *ScoringConfigService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *ScoringConfigService) Activate(questionnaireID, configID uint) error {
	if _, err := s.Repo.FindByID(configID); err != nil {
		return err
	}
	return s.Repo.Activate(questionnaireID, configID)
}

// Resolve returns the questionnaire's single active config. No active config
// is a caller-visible not-found; more than one is a configuration fault the
// resolver refuses to pick a winner for.
func (s *ScoringConfigService) Resolve(questionnaireID uint) (*model.ScoringConfig, error) {
	active, err := s.Repo.FindActive(questionnaireID)
	if err != nil {
		return nil, err
	}
	switch len(active) {
	case 0:
		return nil, util.ErrScoringConfigNotFound
	case 1:
		return &active[0], nil
	default:
		return nil, util.ErrAmbiguousConfig
	}
}
