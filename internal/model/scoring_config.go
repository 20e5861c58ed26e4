package model

import "encoding/json"

// swagger:model ScoringConfig
type ScoringConfig struct {
	BaseModel
	QuestionnaireID uint            `gorm:"index;type:bigint unsigned" json:"questionnaireId"`
	Name            string          `gorm:"size:255" json:"name"`
	ScoringMethod   string          `gorm:"size:32;not null" json:"scoringMethod"`
	Rules           json.RawMessage `gorm:"type:json" json:"rules,omitempty"`
	MaxScore        *float64        `json:"maxScore"`
	PassingScore    *float64        `json:"passingScore"`
	IsActive        bool            `gorm:"default:false;index" json:"isActive"`
}

func (ScoringConfig) TableName() string {
	return "scoring_configs"
}
