package apperrors

import (
	"academy_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный конверт ответа об ошибке.
// Совпадает с контрактом фронтенда: {success:false, message, errors?}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError переводит любую ошибку в конверт ответа.
// Не-AppError всегда скрывается за "Erro interno do servidor".
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", appErr,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
