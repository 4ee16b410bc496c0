package services

import (
	"academy_backend/internal/auth"
	"academy_backend/internal/config"
	"academy_backend/internal/repositories"
	"academy_backend/internal/storage"
	"academy_backend/internal/utils"

	"gorm.io/gorm"
)

// ServiceContainer держит все сервисы приложения
type ServiceContainer struct {
	Auth     AuthService
	Media    MediaService
	Modality ModalityService
	Contact  ContactService
	Profile  ProfileService

	UserRepo repositories.UserRepository
	Issuer   *auth.TokenIssuer
}

// NewServiceContainer собирает репозитории и сервисы поверх подключения к БД
func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.Storage, mailer utils.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	modalityRepo := repositories.NewModalityRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, auth.TTLFromHours(cfg.JWT.TTLHours))

	return &ServiceContainer{
		Auth:     NewAuthService(userRepo, issuer, cfg.Auth.BcryptCost),
		Media:    NewMediaService(mediaRepo, modalityRepo, userRepo, store, cfg.Upload.MaxSize, cfg.Upload.FallbackUploaderEmail),
		Modality: NewModalityService(modalityRepo),
		Contact:  NewContactService(contactRepo, mailer, cfg.Email.ContactInbox),
		Profile:  NewProfileService(profileRepo, userRepo),

		UserRepo: userRepo,
		Issuer:   issuer,
	}
}
