package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeTokenMissing       ErrorCode = "TOKEN_MISSING"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeModalityNotFound ErrorCode = "MODALITY_NOT_FOUND"
	CodeMediaNotFound    ErrorCode = "MEDIA_NOT_FOUND"
	CodeContactNotFound  ErrorCode = "CONTACT_NOT_FOUND"
	CodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeProfileExists       ErrorCode = "PROFILE_ALREADY_EXISTS"
	CodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
