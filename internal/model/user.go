package model

import "time"

type UserRole string

const (
	Admin      UserRole = "admin"
	Clinician  UserRole = "clinician"
	Respondent UserRole = "respondent"
)

// swagger:model User
type User struct {
	BaseModel
	OrganizationID uint       `gorm:"index;type:bigint unsigned" json:"organizationId"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"size:255;not null" json:"-"`
	Role           UserRole   `gorm:"size:20;default:'clinician'" json:"role"`
	LastSeenAt     *time.Time `json:"lastSeenAt,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (User) TableName() string {
	return "users"
}
