package model

import (
	"encoding/json"
	"time"
)

// Response is one respondent submission. Score and RiskLevel are owned
// exclusively by the scoring engine; they stay null until a response has
// been scored.
type Response struct {
	BaseModel
	QuestionnaireID uint      `gorm:"index;type:bigint unsigned" json:"questionnaireId"`
	RespondentName  string    `gorm:"size:255" json:"respondentName"`
	RespondentEmail string    `gorm:"size:255" json:"respondentEmail"`
	Score           *float64  `json:"score"`
	RiskLevel       *string   `gorm:"size:10" json:"riskLevel"`
	SubmittedAt     time.Time `json:"submittedAt"`

	Answers []Answer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

// Answer stores the raw submitted value as JSON so a single column can hold
// strings, numbers, booleans and multi-choice string sets. Score is the
// precomputed contribution (selected option score x weight) when the value
// was resolvable against the question's options at submission time.
type Answer struct {
	BaseModel
	ResponseID uint            `gorm:"index;type:bigint unsigned" json:"responseId"`
	QuestionID uint            `gorm:"index;type:bigint unsigned" json:"questionId"`
	Value      json.RawMessage `gorm:"type:json" json:"value"`
	Score      *float64        `json:"score,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

// DecodeValue unmarshals the stored answer value into its dynamic form
// (string, float64, bool or []interface{}).
func (a *Answer) DecodeValue() (interface{}, error) {
	if len(a.Value) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(a.Value, &v); err != nil {
		return nil, err
	}
	return v, nil
}
