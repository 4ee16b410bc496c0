package integration_test

import (
	"net/http"
	"testing"

	"academy_backend/test/fixtures"
	"academy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// currentUserID возвращает ID владельца токена через /auth/profile
func currentUserID(t *testing.T, ts *helpers.TestServer, token string) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var envelope struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	helpers.UnmarshalBody(t, bodyStr, &envelope)
	require.NotEmpty(t, envelope.Data.ID)
	return envelope.Data.ID
}

func TestProfileFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token := ts.RegisterAndLogin(t, "Pedro", "pedro@test.com", "senha123", "")
	userID := currentUserID(t, ts, token)

	// Анкеты еще нет
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+userID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body := map[string]interface{}{
		"phone":      "(11) 98888-0000",
		"birthDate":  "2005-03-10",
		"experience": "Modalidade: Boxe, Faixa: Azul",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Perfil criado com sucesso")

	// Повторное создание отклоняется
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Perfil já existe")

	update := map[string]interface{}{
		"phone": "(11) 97777-0000",
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/"+userID, token, update)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Perfil atualizado com sucesso")

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+userID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "(11) 97777-0000")
	// Дата рождения не перезатирается пустым значением
	assert.Contains(t, bodyStr, "2005-03-10")

	// Без токена анкета недоступна
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+userID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProfileAccessControl(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	ownerToken := ts.RegisterAndLogin(t, "Pedro", "pedro@test.com", "senha123", "")
	ownerID := currentUserID(t, ts, ownerToken)

	body := map[string]interface{}{"phone": "(11) 98888-0000"}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", ownerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// Другой ученик не видит чужую анкету
	otherToken := ts.RegisterAndLogin(t, "Maria", "maria@test.com", "senha123", "")
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+ownerID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Персонал видит и редактирует любую
	instructorToken := ts.RegisterAndLogin(t, "Instrutor", "instrutor@test.com", "senha123", "INSTRUCTOR")
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+ownerID, instructorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "(11) 98888-0000")

	update := map[string]interface{}{"phone": "(11) 90000-1111"}
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/"+ownerID, instructorToken, update)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestModalitiesListing(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	jiujitsu := fixtures.CreateModality(t, ts.DB, "Jiu-Jitsu")
	fixtures.CreateModality(t, ts.DB, "Muay Thai")
	require.NoError(t, ts.DB.Model(jiujitsu).Updates(map[string]interface{}{
		"video_url": "https://youtube.com/watch?v=abc",
		"benefits":  "Disciplina",
	}).Error)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/modalities", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Jiu-Jitsu")
	assert.Contains(t, bodyStr, "Muay Thai")
	// Публичный листинг отдает только витринную проекцию
	assert.NotContains(t, bodyStr, "videoUrl")
	assert.NotContains(t, bodyStr, "benefits")
	assert.NotContains(t, bodyStr, `"active"`)

	// Точечная выборка остается полной
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/modalities/"+jiujitsu.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "videoUrl")
}

func TestHealthAndNotFound(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"ok"`)

	// Неизвестный маршрут отвечает тем же конвертом
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/nao-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, `"success":false`)
}
