package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/auth"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(userID string) (*models.User, error)
	UpdateCurrentUser(userID string, req *dto.UpdateCurrentUserRequest) (*models.PublicUser, error)
	ListStudents() ([]dto.StudentResponse, error)
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	issuer     *auth.TokenIssuer
	bcryptCost int
}

func NewAuthService(userRepo repositories.UserRepository, issuer *auth.TokenIssuer, bcryptCost int) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

// Register - регистрация нового пользователя.
// Роль по умолчанию STUDENT; дубликат email не создает записи.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleStudent
	}
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Active:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{User: user.Public(), Token: token}, nil
}

// Login - аутентификация пользователя.
// Несуществующий email, неверный пароль и деактивированный аккаунт
// дают одинаковый ответ, чтобы не раскрывать существование email.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{User: user.Public(), Token: token}, nil
}

// GetCurrentUser возвращает пользователя с анкетой
func (s *AuthServiceImpl) GetCurrentUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateCurrentUser - частичное обновление имени/email/пароля
func (s *AuthServiceImpl) UpdateCurrentUser(userID string, req *dto.UpdateCurrentUserRequest) (*models.PublicUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Password != "" {
		if err := auth.ValidatePassword(req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(req.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return user.Public(), nil
}

// ListStudents - листинг активных учеников для админ-панели
// с порядковым номером, возрастом и данными из анкеты
func (s *AuthServiceImpl) ListStudents() ([]dto.StudentResponse, error) {
	users, err := s.userRepo.FindStudents()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	students := make([]dto.StudentResponse, 0, len(users))
	for i, u := range users {
		row := dto.StudentResponse{
			ID:        sequentialID(i + 1),
			UserID:    u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Belt:      "Não informado",
			Modality:  "Não informado",
			Phone:     "Não informado",
			CreatedAt: u.CreatedAt,
		}

		if p := u.Profile; p != nil {
			if p.BirthDate != nil {
				age := ageFromBirthDate(*p.BirthDate)
				row.Age = &age
			}
			if p.Phone != "" {
				row.Phone = p.Phone
			}
			if p.Experience != "" {
				row.Belt = extractBeltFromExperience(p.Experience)
				row.Modality = extractModalityFromExperience(p.Experience)
			}
		}

		students = append(students, row)
	}

	return students, nil
}

func sequentialID(n int) string {
	return fmt.Sprintf("%02d", n)
}

func ageFromBirthDate(birthDate time.Time) int {
	return int(time.Since(birthDate).Hours() / 24 / 365.25)
}

var (
	beltPattern     = regexp.MustCompile(`Faixa:\s*([^,]+?)(?:\s*,|$)`)
	modalityPattern = regexp.MustCompile(`Modalidade:\s*([^,]+)`)
)

// extractBeltFromExperience вытаскивает пояс из свободного текста анкеты;
// пустое значение считается белым поясом
func extractBeltFromExperience(experience string) string {
	if m := beltPattern.FindStringSubmatch(experience); m != nil {
		if belt := strings.TrimSpace(m[1]); belt != "" {
			return belt
		}
	}
	return "Branca"
}

func extractModalityFromExperience(experience string) string {
	if m := modalityPattern.FindStringSubmatch(experience); m != nil {
		if modality := strings.TrimSpace(m[1]); modality != "" {
			return modality
		}
	}
	return "Não informado"
}
