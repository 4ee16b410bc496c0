package integration_test

import (
	"net/http"
	"testing"

	"academy_backend/internal/models"
	"academy_backend/test/fixtures"
	"academy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffToken(t *testing.T, ts *helpers.TestServer) string {
	t.Helper()

	fixtures.CreateUser(t, ts.DB, &models.User{
		Name:         "Instrutor",
		Email:        "instrutor@test.com",
		PasswordHash: "senha123",
		Role:         models.UserRoleInstructor,
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "instrutor@test.com",
		"password": "senha123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	helpers.UnmarshalBody(t, bodyStr, &envelope)
	return envelope.Data.Token
}

func TestContactFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	// Публичная отправка обращения
	body := map[string]interface{}{
		"name":    "Carlos Souza",
		"email":   "carlos@test.com",
		"subject": "Matrícula - Modalidade: Muay Thai | Site",
		"message": "Gostaria de saber os horários das aulas.",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/contacts", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Mensagem enviada com sucesso")

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	helpers.UnmarshalBody(t, bodyStr, &created)

	// Листинг закрыт для анонимов
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token := staffToken(t, ts)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/contacts", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "carlos@test.com")
	assert.Contains(t, bodyStr, `"status":"NEW"`)

	// Смена статуса
	res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/api/v1/contacts/"+created.Data.ID+"/status", token,
		map[string]interface{}{"status": "RESOLVED"})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"RESOLVED"`)

	// Группировка по модальности из темы
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/contacts/by-modality", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Muay Thai")
}

func TestContact_ValidationTooShortMessage(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"name":    "Carlos",
		"email":   "carlos@test.com",
		"subject": "Oi",
		"message": "curta",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/contacts", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"success":false`)
}

func TestContact_StatusUpdateRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token := staffToken(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/contacts/qualquer/status", token,
		map[string]interface{}{"status": "ARCHIVED"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
