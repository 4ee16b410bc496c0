package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy_backend/internal/app"
	"academy_backend/internal/config"
	"academy_backend/test/fixtures"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer - HTTP сервер приложения поверх тестовой БД
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestConfig собирает конфигурацию для тестов без чтения файлов
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	cfg.Auth.BcryptCost = 4
	cfg.Upload.MaxSize = 50 * 1024 * 1024
	cfg.Upload.FallbackUploaderEmail = "admin@studiotopteamfight.com"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	return cfg
}

// NewTestServer поднимает полный стек приложения на in-memory БД
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := NewTestConfig(t)
	db := fixtures.NewTestDB(t)

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

// SendRequest отправляет JSON запрос; token добавляется как Bearer
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Не удалось сериализовать тело запроса: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Не удалось создать запрос: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Запрос %s %s упал: %v", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Не удалось прочитать тело ответа: %v", err)
	}

	return res, string(data)
}

// SendMultipart отправляет multipart/form-data с файлом и полями
func (ts *TestServer) SendMultipart(t *testing.T, path, token, fileName string, fileContent []byte, fields map[string]string) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Не удалось записать поле %s: %v", key, err)
		}
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("Не удалось создать файловую часть: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("Не удалось записать содержимое файла: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Не удалось закрыть multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Не удалось создать запрос: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Запрос POST %s упал: %v", path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Не удалось прочитать тело ответа: %v", err)
	}

	return res, string(data)
}

// UnmarshalBody парсит JSON тело ответа в целевую структуру
func UnmarshalBody(t *testing.T, body string, target interface{}) {
	t.Helper()

	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("Не удалось распарсить JSON ответ: %v\n%s", err, body)
	}
}

// RegisterAndLogin регистрирует пользователя через API и возвращает токен
func (ts *TestServer) RegisterAndLogin(t *testing.T, name, email, password, role string) string {
	t.Helper()

	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	}
	if role != "" {
		body["role"] = role
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("Регистрация %s провалилась (%d): %s", email, res.StatusCode, bodyStr)
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(bodyStr), &envelope); err != nil {
		t.Fatalf("Не удалось распарсить ответ регистрации: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatalf("Регистрация не вернула токен: %s", bodyStr)
	}

	return envelope.Data.Token
}
