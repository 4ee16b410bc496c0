package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails возвращает копию ошибки с деталями,
// чтобы не мутировать предопределенные переменные
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация и авторизация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Email ou senha inválidos", http.StatusUnauthorized)
	ErrTokenMissing       = New(CodeTokenMissing, "Token de acesso não fornecido", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Token inválido", http.StatusForbidden)
	ErrStaleIdentity      = New(CodeInvalidToken, "Usuário não encontrado ou inativo", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Autenticação necessária", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Acesso negado. Permissão insuficiente.", http.StatusForbidden)

	// Пользователи
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email já cadastrado", http.StatusConflict)
	ErrUserNotFound       = New(CodeUserNotFound, "Usuário não encontrado", http.StatusNotFound)
	ErrWeakPassword       = New(CodeWeakPassword, "Senha deve ter pelo menos 6 caracteres", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Perfil de usuário inválido", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Dados inválidos", http.StatusBadRequest)

	// Медиа и модальности
	ErrModalityNotFound    = New(CodeModalityNotFound, "Modalidade não encontrada", http.StatusNotFound)
	ErrMediaNotFound       = New(CodeMediaNotFound, "Mídia não encontrada", http.StatusNotFound)
	ErrUnsupportedFileType = New(CodeUnsupportedFileType,
		"Tipo de arquivo não suportado. Use apenas imagens (jpg, png, gif, webp) ou vídeos (mp4, avi, mov, wmv, flv, webm).",
		http.StatusBadRequest)
	ErrFileTooLarge = New(CodeFileTooLarge, "Arquivo excede o tamanho máximo permitido", http.StatusBadRequest)
	ErrFileMissing  = New(CodeValidationFailed, "Nenhum arquivo foi enviado.", http.StatusBadRequest)

	// Обращения и профили
	ErrContactNotFound = New(CodeContactNotFound, "Contato não encontrado", http.StatusNotFound)
	ErrProfileNotFound = New(CodeProfileNotFound, "Perfil não encontrado", http.StatusNotFound)
	ErrProfileExists   = New(CodeProfileExists, "Perfil já existe para este usuário", http.StatusBadRequest)
)

// ValidationError создает ошибку валидации со структурированными
// полевыми сообщениями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// InternalError оборачивает неожиданную ошибку; причина логируется
// на сервере и не попадает клиенту
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Erro interno do servidor", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
