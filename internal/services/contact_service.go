package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/internal/utils"
)

type ContactService interface {
	Create(ctx context.Context, userID string, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error)
	List(ctx context.Context, query *dto.ContactListQuery) (*dto.ContactListResponse, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error)
	GroupByModality(ctx context.Context) (map[string][]models.Contact, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	mailer      utils.Sender
	inbox       string
}

// NewContactService: mailer может быть nil, тогда уведомления отключены
func NewContactService(contactRepo repositories.ContactRepository, mailer utils.Sender, inbox string) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		mailer:      mailer,
		inbox:       inbox,
	}
}

// Create сохраняет обращение и асинхронно шлет уведомление на почту
// академии; сбой отправки не влияет на результат запроса
func (s *ContactServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if userID != "" {
		contact.UserID = &userID
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.mailer != nil && s.inbox != "" {
		go s.notify(contact)
	}

	return &dto.CreateContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		CreatedAt: contact.CreatedAt,
	}, nil
}

func (s *ContactServiceImpl) notify(contact *models.Contact) {
	body := fmt.Sprintf(
		"<h3>Novo contato recebido</h3>"+
			"<p><b>Nome:</b> %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Telefone:</b> %s</p>"+
			"<p><b>Assunto:</b> %s</p>"+
			"<p><b>Mensagem:</b></p><p>%s</p>",
		contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message,
	)
	if err := s.mailer.Send(s.inbox, "Novo contato: "+contact.Subject, body); err != nil {
		logger.Warn("failed to send contact notification",
			"contact_id", contact.ID, "error", err)
	}
}

func (s *ContactServiceImpl) List(ctx context.Context, query *dto.ContactListQuery) (*dto.ContactListResponse, error) {
	filter := repositories.ContactFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	contacts, total, err := s.contactRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ContactListResponse{
		Contacts: contacts,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages(total, filter.Limit),
		},
	}, nil
}

func (s *ContactServiceImpl) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return contact, nil
}

func (s *ContactServiceImpl) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	if !models.ValidContactStatus(status) {
		return nil, apperrors.NewBadRequestError("Status inválido")
	}

	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	contact.Status = status
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return contact, nil
}

var contactModalityPattern = regexp.MustCompile(`Modalidade:\s*([^|]+)`)

// GroupByModality группирует обращения по модальности, упомянутой
// в теме сообщения ("Modalidade: <имя> | ...")
func (s *ContactServiceImpl) GroupByModality(ctx context.Context) (map[string][]models.Contact, error) {
	contacts, err := s.contactRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	groups := make(map[string][]models.Contact)
	for _, c := range contacts {
		key := "Geral"
		if m := contactModalityPattern.FindStringSubmatch(c.Subject); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				key = name
			}
		}
		groups[key] = append(groups[key], c)
	}

	return groups, nil
}
