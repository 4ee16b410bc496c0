package repositories

import (
	"errors"

	"academy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrModalityNotFound = errors.New("modality not found")

type ModalityRepository interface {
	FindByID(id string) (*models.Modality, error)
	FindActive() ([]models.Modality, error)
	Create(modality *models.Modality) error
}

type ModalityRepositoryImpl struct {
	db *gorm.DB
}

func NewModalityRepository(db *gorm.DB) ModalityRepository {
	return &ModalityRepositoryImpl{db: db}
}

func (r *ModalityRepositoryImpl) FindByID(id string) (*models.Modality, error) {
	var modality models.Modality
	err := r.db.First(&modality, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, err
	}
	return &modality, nil
}

func (r *ModalityRepositoryImpl) FindActive() ([]models.Modality, error) {
	var modalities []models.Modality
	err := r.db.Where("active = ?", true).Order("name asc").Find(&modalities).Error
	return modalities, err
}

func (r *ModalityRepositoryImpl) Create(modality *models.Modality) error {
	return r.db.Create(modality).Error
}
