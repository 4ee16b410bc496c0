package repositories

import (
	"errors"

	"academy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media not found")

// MediaFilter - критерии выборки медиа для листингов
type MediaFilter struct {
	ModalityID string
	Type       models.MediaType
	Page       int
	Limit      int
}

type MediaRepository interface {
	Create(media *models.Media) error
	FindByID(id string) (*models.Media, error)
	FindWithFilter(filter MediaFilter) ([]models.Media, int64, error)
	Update(media *models.Media) error
	Delete(id string) error
}

type MediaRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

// FindByID возвращает запись независимо от флага active
func (r *MediaRepositoryImpl) FindByID(id string) (*models.Media, error) {
	var media models.Media
	err := r.db.Preload("Modality").Preload("Uploader").
		First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// FindWithFilter возвращает только активные записи,
// отсортированные по дате создания (новые первыми)
func (r *MediaRepositoryImpl) FindWithFilter(filter MediaFilter) ([]models.Media, int64, error) {
	query := r.db.Model(&models.Media{}).Where("active = ?", true)

	if filter.ModalityID != "" {
		query = query.Where("modality_id = ?", filter.ModalityID)
	}
	if filter.Type != "" {
		query = query.Where("file_type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var media []models.Media
	err := query.Preload("Modality").Preload("Uploader").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&media).Error
	if err != nil {
		return nil, 0, err
	}

	return media, total, nil
}

func (r *MediaRepositoryImpl) Update(media *models.Media) error {
	return r.db.Save(media).Error
}

func (r *MediaRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Media{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
