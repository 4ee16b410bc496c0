package services

import (
	"academy_backend/internal/apperrors"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
)

type ModalityService interface {
	ListActive() ([]dto.ModalitySummary, error)
	GetByID(id string) (*models.Modality, error)
}

type ModalityServiceImpl struct {
	modalityRepo repositories.ModalityRepository
}

func NewModalityService(modalityRepo repositories.ModalityRepository) ModalityService {
	return &ModalityServiceImpl{modalityRepo: modalityRepo}
}

// ListActive возвращает активные модальности для витрины сайта.
// Наружу уходит только публичная проекция, без служебных полей.
func (s *ModalityServiceImpl) ListActive() ([]dto.ModalitySummary, error) {
	modalities, err := s.modalityRepo.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ModalitySummary, 0, len(modalities))
	for _, m := range modalities {
		summaries = append(summaries, dto.ModalitySummary{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Image:       m.Image,
			MinAge:      m.MinAge,
			Duration:    m.Duration,
		})
	}
	return summaries, nil
}

func (s *ModalityServiceImpl) GetByID(id string) (*models.Modality, error) {
	modality, err := s.modalityRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrModalityNotFound) {
			return nil, apperrors.ErrModalityNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return modality, nil
}
