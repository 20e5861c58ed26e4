package model

// swagger:model Organization
type Organization struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Organization) TableName() string {
	return "organizations"
}
