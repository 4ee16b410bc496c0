package dto

import (
	"time"

	"academy_backend/internal/models"
)

// CreateContactRequest - входящее обращение с сайта
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

// CreateContactResponse - подтверждение приема обращения
type CreateContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateContactStatusRequest - смена статуса обращения
type UpdateContactStatusRequest struct {
	Status models.ContactStatus `json:"status" validate:"required,oneof=NEW IN_PROGRESS RESOLVED"`
}

// ContactListQuery - параметры листинга обращений
type ContactListQuery struct {
	Status models.ContactStatus `form:"status" validate:"omitempty,oneof=NEW IN_PROGRESS RESOLVED"`
	Page   int                  `form:"page,default=1" validate:"omitempty,gte=1"`
	Limit  int                  `form:"limit,default=10" validate:"omitempty,gte=1"`
}

// ContactListResponse - страница листинга обращений
type ContactListResponse struct {
	Contacts   []models.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}
