package models

type Contact struct {
	BaseModel
	Name    string        `gorm:"not null" json:"name"`
	Email   string        `gorm:"not null" json:"email"`
	Phone   string        `json:"phone,omitempty"`
	Subject string        `gorm:"not null" json:"subject"`
	Message string        `gorm:"not null" json:"message"`
	Status  ContactStatus `gorm:"type:varchar(20);default:'NEW'" json:"status"`
	UserID  *string       `gorm:"index" json:"userId,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
