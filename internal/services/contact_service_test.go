package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubSender собирает отправленные письма для проверок
type stubSender struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newStubSender() *stubSender {
	return &stubSender{done: make(chan struct{}, 10)}
}

func (s *stubSender) Send(to, subject, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, subject)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func newContactService(t *testing.T, mailer *stubSender) (ContactService, *gorm.DB) {
	t.Helper()

	db := fixtures.NewTestDB(t)

	var svc ContactService
	if mailer != nil {
		svc = NewContactService(repositories.NewContactRepository(db), mailer, "academia@test.com")
	} else {
		svc = NewContactService(repositories.NewContactRepository(db), nil, "")
	}
	return svc, db
}

func TestContactService_Create(t *testing.T) {
	t.Parallel()

	mailer := newStubSender()
	svc, db := newContactService(t, mailer)

	resp, err := svc.Create(context.Background(), "", &dto.CreateContactRequest{
		Name:    "Carlos Souza",
		Email:   "carlos@test.com",
		Subject: "Matrícula - Modalidade: Muay Thai | Site",
		Message: "Gostaria de saber os horários das aulas.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	var stored models.Contact
	require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	assert.Equal(t, models.ContactStatusNew, stored.Status)
	assert.Nil(t, stored.UserID)

	// Уведомление уходит асинхронно
	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("уведомление не было отправлено")
	}
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0], "Muay Thai")
}

func TestContactService_Create_LinksAuthenticatedUser(t *testing.T) {
	t.Parallel()

	svc, db := newContactService(t, nil)
	user := fixtures.CreateUser(t, db, &models.User{Name: "Maria", Email: "maria@test.com"})

	resp, err := svc.Create(context.Background(), user.ID, &dto.CreateContactRequest{
		Name:    "Maria",
		Email:   "maria@test.com",
		Subject: "Dúvida sobre pagamento",
		Message: "Posso pagar por PIX mensalmente?",
	})
	require.NoError(t, err)

	var stored models.Contact
	require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, user.ID, *stored.UserID)
}

func TestContactService_UpdateStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newContactService(t, nil)
	ctx := context.Background()

	resp, err := svc.Create(ctx, "", &dto.CreateContactRequest{
		Name:    "Carlos",
		Email:   "carlos@test.com",
		Subject: "Horários",
		Message: "Quais os horários de treino?",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, resp.ID, models.ContactStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusInProgress, updated.Status)

	_, err = svc.UpdateStatus(ctx, resp.ID, "ARCHIVED")
	require.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "nao-existe", models.ContactStatusResolved)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactService_List_FilterByStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newContactService(t, nil)
	ctx := context.Background()

	var lastID string
	for i := 0; i < 3; i++ {
		resp, err := svc.Create(ctx, "", &dto.CreateContactRequest{
			Name:    "Visitante",
			Email:   "visitante@test.com",
			Subject: "Informações",
			Message: "Mensagem longa o suficiente.",
		})
		require.NoError(t, err)
		lastID = resp.ID
	}

	_, err := svc.UpdateStatus(ctx, lastID, models.ContactStatusResolved)
	require.NoError(t, err)

	resolved, err := svc.List(ctx, &dto.ContactListQuery{Status: models.ContactStatusResolved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved.Pagination.Total)

	pending, err := svc.List(ctx, &dto.ContactListQuery{Status: models.ContactStatusNew})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Pagination.Total)
}

func TestContactService_GroupByModality(t *testing.T) {
	t.Parallel()

	svc, _ := newContactService(t, nil)
	ctx := context.Background()

	subjects := []string{
		"Matrícula - Modalidade: Jiu-Jitsu | Site",
		"Aula experimental - Modalidade: Jiu-Jitsu | Site",
		"Modalidade: Muay Thai | Contato",
		"Dúvida geral sobre a academia",
	}
	for _, subject := range subjects {
		_, err := svc.Create(ctx, "", &dto.CreateContactRequest{
			Name:    "Visitante",
			Email:   "visitante@test.com",
			Subject: subject,
			Message: "Mensagem longa o suficiente.",
		})
		require.NoError(t, err)
	}

	groups, err := svc.GroupByModality(ctx)
	require.NoError(t, err)

	assert.Len(t, groups["Jiu-Jitsu"], 2)
	assert.Len(t, groups["Muay Thai"], 1)
	assert.Len(t, groups["Geral"], 1)
}
