package model

import "time"

const NotificationHighRisk = "high_risk"

type Notification struct {
	UUIDBase
	OrganizationID  uint       `gorm:"index;type:bigint unsigned" json:"organizationId"`
	UserID          uint       `gorm:"index;type:bigint unsigned" json:"userId"`
	QuestionnaireID uint       `gorm:"type:bigint unsigned" json:"questionnaireId"`
	ResponseID      uint       `gorm:"type:bigint unsigned" json:"responseId"`
	Kind            string     `gorm:"size:32;not null" json:"kind"`
	Message         string     `gorm:"type:text" json:"message"`
	ReadAt          *time.Time `json:"readAt,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
