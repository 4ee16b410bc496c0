package middleware

import (
	"strings"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/auth"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT.
// Подпись проверяется токеном, актуальность - базой: токен
// деактивированного или удаленного пользователя отклоняется.
func AuthMiddleware(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.Subject)
		if err != nil || !user.Active {
			apperrors.HandleError(c, apperrors.ErrStaleIdentity)
			c.Abort()
			return
		}

		setIdentity(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware привязывает идентичность, если токен есть и
// валиден; иначе запрос идет дальше анонимным
func OptionalAuthMiddleware(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindByID(claims.Subject)
		if err != nil || !user.Active {
			c.Next()
			return
		}

		setIdentity(c, user)
		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				apperrors.HandleError(c, apperrors.ErrForbidden)
				c.Abort()
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin - доступ только администраторам
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

// RequireStaff - доступ администраторам и инструкторам
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin, models.UserRoleInstructor)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

func setIdentity(c *gin.Context, user *models.User) {
	c.Set("userID", user.ID)
	c.Set("userEmail", user.Email)
	c.Set("role", user.Role)

	ctx := logger.WithUserID(c.Request.Context(), user.ID)
	c.Request = c.Request.WithContext(ctx)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
