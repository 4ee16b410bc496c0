package models

import "time"

type Profile struct {
	BaseModel
	UserID           string     `gorm:"not null;uniqueIndex" json:"userId"`
	Phone            string     `json:"phone,omitempty"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	EmergencyPhone   string     `json:"emergencyPhone,omitempty"`
	HealthIssues     string     `json:"healthIssues,omitempty"`
	Experience       string     `json:"experience,omitempty"`
	Objectives       string     `json:"objectives,omitempty"`
}
