package repository

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/util"

	"gorm.io/gorm"
)

type ScoringConfigRepository struct {
	DB *gorm.DB
}

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{DB: db}
}

func (r *ScoringConfigRepository) Create(c *model.ScoringConfig) error {
	return r.DB.Create(c).Error
}

func (r *ScoringConfigRepository) FindByID(id uint) (*model.ScoringConfig, error) {
	var c model.ScoringConfig
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrScoringConfigNotFound
	}
	return &c, err
}

func (r *ScoringConfigRepository) ListByQuestionnaire(questionnaireID uint) ([]model.ScoringConfig, error) {
	var cs []model.ScoringConfig
	err := r.DB.Where("questionnaire_id = ?", questionnaireID).
		Order("created_at desc").Find(&cs).Error
	return cs, err
}

// FindActive returns every active config for the questionnaire. Callers
// decide what more than one active config means; the repository does not
// pick a winner.
func (r *ScoringConfigRepository) FindActive(questionnaireID uint) ([]model.ScoringConfig, error) {
	var cs []model.ScoringConfig
	err := r.DB.Where("questionnaire_id = ? AND is_active = ?", questionnaireID, true).Find(&cs).Error
	return cs, err
}

func (r *ScoringConfigRepository) Update(c *model.ScoringConfig) error {
	return r.DB.Save(c).Error
}

func (r *ScoringConfigRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ScoringConfig{}, id).Error
}

// Activate makes one config the questionnaire's active config, deactivating
// siblings in the same transaction so at most one stays active.
func (r *ScoringConfigRepository) Activate(questionnaireID, configID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ScoringConfig{}).
			Where("questionnaire_id = ? AND id <> ?", questionnaireID, configID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.ScoringConfig{}).
			Where("id = ? AND questionnaire_id = ?", configID, questionnaireID).
			Update("is_active", true).Error
	})
}
