package integration_test

import (
	"net/http"
	"testing"

	"academy_backend/internal/models"
	"academy_backend/test/fixtures"
	"academy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и вход через публичное API
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"name":     "João Silva",
		"email":    "joao@test.com",
		"password": "senha123",
	}
	regRes, regBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, `"success":true`)
	assert.Contains(t, regBodyStr, `"role":"STUDENT"`)
	// Хеш пароля не должен утекать в ответ
	assert.NotContains(t, regBodyStr, "senha123")
	assert.NotContains(t, regBodyStr, "passwordHash")

	loginBody := map[string]interface{}{
		"email":    "joao@test.com",
		"password": "senha123",
	}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, `"token"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	ts.RegisterAndLogin(t, "João", "joao@test.com", "senha123", "")

	body := map[string]interface{}{
		"name":     "Outro João",
		"email":    "joao@test.com",
		"password": "outrasenha",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email já cadastrado")
}

func TestRegister_ValidationEnvelope(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"name":     "J",
		"email":    "not-an-email",
		"password": "123",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"success":false`)
	// Полевые ошибки под ключами из json-тегов
	assert.Contains(t, bodyStr, `"errors"`)
	assert.Contains(t, bodyStr, `"email"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	ts.RegisterAndLogin(t, "Maria", "maria@test.com", "senha123", "")

	body := map[string]interface{}{
		"email":    "maria@test.com",
		"password": "senha-errada",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Email ou senha inválidos")
}

func TestAuthProfile(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token := ts.RegisterAndLogin(t, "Maria", "maria@test.com", "senha123", "")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "maria@test.com")

	// Без токена - 401
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuthStudents_StaffOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	studentToken := ts.RegisterAndLogin(t, "Aluno", "aluno@test.com", "senha123", "")

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/students", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	fixtures.CreateUser(t, ts.DB, &models.User{
		Name:         "Instrutor",
		Email:        "instrutor@test.com",
		PasswordHash: "senha123",
		Role:         models.UserRoleInstructor,
	})
	loginBody := map[string]interface{}{"email": "instrutor@test.com", "password": "senha123"}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	helpers.UnmarshalBody(t, logBodyStr, &envelope)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/students", envelope.Data.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "aluno@test.com")
}
