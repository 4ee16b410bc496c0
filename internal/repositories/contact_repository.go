package repositories

import (
	"errors"

	"academy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactFilter - критерии выборки обращений
type ContactFilter struct {
	Status models.ContactStatus
	Page   int
	Limit  int
}

type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id string) (*models.Contact, error)
	FindWithFilter(filter ContactFilter) ([]models.Contact, int64, error)
	FindAll() ([]models.Contact, error)
	Update(contact *models.Contact) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("User").First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindWithFilter(filter ContactFilter) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
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
		limit = 10
	}

	var contacts []models.Contact
	err := query.Preload("User").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *ContactRepositoryImpl) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at desc").Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}
