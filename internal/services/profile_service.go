package services

import (
	"time"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
)

type ProfileService interface {
	Create(userID string, req *dto.ProfileRequest) (*models.Profile, error)
	Update(userID string, req *dto.ProfileRequest) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetByUserID(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Create создает анкету; пользователь должен существовать,
// повторное создание отклоняется
func (s *ProfileServiceImpl) Create(userID string, req *dto.ProfileRequest) (*models.Profile, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.profileRepo.FindByUserID(userID); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	birthDate, err := parseBirthDateField(req.BirthDate)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: userID}
	applyProfileRequest(profile, req, birthDate)

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Update обновляет существующую анкету
func (s *ProfileServiceImpl) Update(userID string, req *dto.ProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	birthDate, err := parseBirthDateField(req.BirthDate)
	if err != nil {
		return nil, err
	}

	applyProfileRequest(profile, req, birthDate)

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func applyProfileRequest(profile *models.Profile, req *dto.ProfileRequest, birthDate *time.Time) {
	profile.Phone = req.Phone
	profile.Address = req.Address
	profile.EmergencyContact = req.EmergencyContact
	profile.EmergencyPhone = req.EmergencyPhone
	profile.HealthIssues = req.HealthIssues
	profile.Experience = req.Experience
	profile.Objectives = req.Objectives
	if birthDate != nil {
		profile.BirthDate = birthDate
	}
}

func parseBirthDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := parseBirthDate(value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Data de nascimento inválida")
	}
	return &parsed, nil
}

// parseBirthDate принимает дату как в полном формате RFC 3339,
// так и укороченную форму YYYY-MM-DD
func parseBirthDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
