package dto

import (
	"mime/multipart"
	"time"

	"academy_backend/internal/models"
)

// UploadMediaRequest - multipart-запрос загрузки файла
type UploadMediaRequest struct {
	Title       string                `form:"title" validate:"required,min=1"`
	Description string                `form:"description"`
	ModalityID  string                `form:"modalityId" validate:"required"`
	File        *multipart.FileHeader `json:"-" form:"-"`
}

// AddMediaByURLRequest - регистрация внешне размещенного файла.
// Заявленные fileType и fileSize принимаются на веру, удаленный
// ресурс не проверяется.
type AddMediaByURLRequest struct {
	Title       string           `json:"title" validate:"required,min=1"`
	Description string           `json:"description"`
	ModalityID  string           `json:"modalityId" validate:"required"`
	FileURL     string           `json:"fileUrl" validate:"required,url"`
	FileType    models.MediaType `json:"fileType" validate:"required,oneof=IMAGE VIDEO"`
	FileName    string           `json:"fileName" validate:"required,min=1"`
	FileSize    int64            `json:"fileSize" validate:"gte=0"`
}

// UpdateMediaRequest - частичное обновление метаданных
type UpdateMediaRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// MediaListQuery - параметры листинга
type MediaListQuery struct {
	Type       models.MediaType `form:"type" validate:"omitempty,oneof=IMAGE VIDEO"`
	ModalityID string           `form:"modalityId"`
	Page       int              `form:"page,default=1" validate:"omitempty,gte=1"`
	Limit      int              `form:"limit,default=20" validate:"omitempty,gte=1"`
}

// MediaResponse - медиа с проекциями модальности и загрузившего
type MediaResponse struct {
	ID          string              `json:"id"`
	ModalityID  string              `json:"modalityId"`
	UploadedBy  string              `json:"uploadedBy"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	FileURL     string              `json:"fileUrl"`
	FileType    models.MediaType    `json:"fileType"`
	FileSize    int64               `json:"fileSize"`
	FileName    string              `json:"fileName"`
	Active      bool                `json:"active"`
	CreatedAt   time.Time           `json:"createdAt"`
	Modality    *models.ModalityRef `json:"modality,omitempty"`
	User        *UserRef            `json:"user,omitempty"`
}

// UserRef - краткая проекция пользователя для вложенных ответов
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pagination - блок пагинации листингов
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// MediaListResponse - страница листинга медиа
type MediaListResponse struct {
	Media      []MediaResponse `json:"media"`
	Pagination Pagination      `json:"pagination"`
}
