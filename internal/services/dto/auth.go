package dto

import (
	"time"

	"academy_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=ADMIN INSTRUCTOR STUDENT"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - публичная проекция пользователя + токен сессии
type AuthResponse struct {
	User  *models.PublicUser `json:"user"`
	Token string             `json:"token"`
}

// UpdateCurrentUserRequest - частичное обновление своих данных
type UpdateCurrentUserRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// StudentResponse - строка листинга учеников для админ-панели.
// Belt и Modality извлекаются из свободного поля experience профиля.
type StudentResponse struct {
	ID        string    `json:"id"` // Порядковый номер: 01, 02, ...
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	Belt      string    `json:"belt"`
	Modality  string    `json:"modality"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
