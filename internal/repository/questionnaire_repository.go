package repository

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionnaireRepository struct {
	DB *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{DB: db}
}

func (r *QuestionnaireRepository) Create(q *model.Questionnaire) error {
	return r.DB.Create(q).Error
}

func (r *QuestionnaireRepository) FindByID(id uint) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.DB.First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionnaireNotFound
	}
	return &q, err
}

func (r *QuestionnaireRepository) FindByShareToken(token string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.DB.Where("share_token = ?", token).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionnaireNotFound
	}
	return &q, err
}

func (r *QuestionnaireRepository) ListByOrganization(orgID uint, page, limit int) ([]model.Questionnaire, int64, error) {
	var qs []model.Questionnaire
	var total int64
	query := r.DB.Model(&model.Questionnaire{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionnaireRepository) Update(q *model.Questionnaire) error {
	return r.DB.Save(q).Error
}

func (r *QuestionnaireRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Questionnaire{}, id).Error
}

// Question methods

func (r *QuestionnaireRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionnaireRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return &q, err
}

func (r *QuestionnaireRepository) ListQuestions(questionnaireID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("questionnaire_id = ?", questionnaireID).
		Order("`order` asc, created_at asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionnaireRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionnaireRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
