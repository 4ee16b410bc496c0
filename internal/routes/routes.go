package routes

import (
	"net/http"

	"academy_backend/internal/handlers"
	"academy_backend/internal/middleware"
	"academy_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sc *services.ServiceContainer,
	uploadsDir string,
) {
	authMW := middleware.AuthMiddleware(sc.Issuer, sc.UserRepo)
	optionalAuthMW := middleware.OptionalAuthMiddleware(sc.Issuer, sc.UserRepo)
	staffMW := middleware.RequireStaff()

	// Проверка живости для балансировщика
	ginRouter.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Раздача загруженных файлов
	ginRouter.Static("/uploads", uploadsDir)

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW, staffMW)
		appHandlers.MediaHandler.RegisterRoutes(api, optionalAuthMW, authMW, staffMW)
		appHandlers.ModalityHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api, optionalAuthMW, authMW, staffMW)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW)
	}

	// Единый конверт и для неизвестных маршрутов
	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Rota não encontrada",
		})
	})
}
