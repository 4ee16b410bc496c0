package handlers

import (
	"academy_backend/internal/config"
	"academy_backend/internal/services"
	"academy_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	MediaHandler    *MediaHandler
	ModalityHandler *ModalityHandler
	ContactHandler  *ContactHandler
	ProfileHandler  *ProfileHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, cfg *config.Config) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, sc.Auth),
		MediaHandler:    NewMediaHandler(base, sc.Media, cfg.Upload.MaxSize),
		ModalityHandler: NewModalityHandler(base, sc.Modality),
		ContactHandler:  NewContactHandler(base, sc.Contact),
		ProfileHandler:  NewProfileHandler(base, sc.Profile),
	}
}
