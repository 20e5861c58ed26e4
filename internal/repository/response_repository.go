package repository

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/util"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// Create persists a response together with its answers in one transaction.
func (r *ResponseRepository) Create(resp *model.Response) error {
	return r.DB.Create(resp).Error
}

func (r *ResponseRepository) FindByID(id uint) (*model.Response, error) {
	var resp model.Response
	err := r.DB.First(&resp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return &resp, err
}

func (r *ResponseRepository) FindByIDWithAnswers(id uint) (*model.Response, error) {
	var resp model.Response
	err := r.DB.Preload("Answers").First(&resp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return &resp, err
}

func (r *ResponseRepository) ListAnswers(responseID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("response_id = ?", responseID).Order("question_id asc").Find(&answers).Error
	return answers, err
}

func (r *ResponseRepository) ListByQuestionnaire(questionnaireID uint, page, limit int) ([]model.Response, int64, error) {
	var rs []model.Response
	var total int64
	query := r.DB.Model(&model.Response{}).Where("questionnaire_id = ?", questionnaireID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("submitted_at desc").Offset(offset).Limit(limit).Find(&rs).Error
	return rs, total, err
}

// ApplyScore writes score and risk level in a single update and returns the
// stored row. This is the only write path for those two columns.
func (r *ResponseRepository) ApplyScore(responseID uint, score float64, riskLevel string) (*model.Response, error) {
	err := r.DB.Model(&model.Response{}).Where("id = ?", responseID).
		Updates(map[string]interface{}{"score": score, "risk_level": riskLevel}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(responseID)
}

// ListAllWithAnswers loads every response of a questionnaire for export.
func (r *ResponseRepository) ListAllWithAnswers(questionnaireID uint) ([]model.Response, error) {
	var rs []model.Response
	err := r.DB.Preload("Answers").
		Where("questionnaire_id = ?", questionnaireID).
		Order("submitted_at asc").Find(&rs).Error
	return rs, err
}

func (r *ResponseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Response{}, id).Error
	})
}
