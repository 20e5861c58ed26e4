package model

import (
	"encoding/json"
	"time"
)

type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeSingleChoice   QuestionType = "single_choice"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeRating         QuestionType = "rating"
	TypeYesNo          QuestionType = "yes_no"
	TypeScale          QuestionType = "scale"
	TypeDate           QuestionType = "date"
)

// swagger:model Questionnaire
type Questionnaire struct {
	BaseModel
	OrganizationID uint       `gorm:"index;type:bigint unsigned" json:"organizationId"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	ShareToken     string     `gorm:"size:36;uniqueIndex" json:"shareToken"`
	IsPublished    bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}

// QuestionOption is one selectable choice with its score contribution.
type QuestionOption struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Question struct {
	BaseModel
	QuestionnaireID uint            `gorm:"index;type:bigint unsigned" json:"questionnaireId"`
	Type            QuestionType    `gorm:"size:50;not null" json:"type"`
	Content         string          `gorm:"type:text;not null" json:"content"`
	Options         json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	ScoringWeight   int             `gorm:"default:1" json:"scoringWeight"`
	Required        bool            `gorm:"default:false" json:"required"`
	Order           int             `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}

// DecodeOptions unmarshals the JSON options column. A question without
// options (text, date, ...) yields an empty slice.
func (q *Question) DecodeOptions() ([]QuestionOption, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var opts []QuestionOption
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
