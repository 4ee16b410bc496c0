package handlers

import (
	"academy_backend/internal/apperrors"
	"academy_backend/internal/models"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует маршруты анкеты ученика.
// Ученик работает только со своей анкетой, персонал - с любой.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profiles := rg.Group("/profiles")
	profiles.Use(authMW)
	{
		profiles.POST("", h.Create)
		profiles.GET("/:userId", h.GetByUserID)
		profiles.PUT("/:userId", h.Update)
	}
}

// resolveTarget решает, чью анкету трогает запрос: персонал может
// указать любого пользователя, остальные - только себя
func (h *ProfileHandler) resolveTarget(c *gin.Context, requested string) (string, bool) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return "", false
	}
	if requested == "" || requested == callerID {
		return callerID, true
	}

	roleVal, _ := c.Get("role")
	role, _ := roleVal.(models.UserRole)
	if role == models.UserRoleAdmin || role == models.UserRoleInstructor {
		return requested, true
	}

	apperrors.HandleError(c, apperrors.ErrForbidden)
	return "", false
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.ProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	target, ok := h.resolveTarget(c, req.UserID)
	if !ok {
		return
	}

	profile, err := h.profileService.Create(target, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Perfil criado com sucesso", profile)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	target, ok := h.resolveTarget(c, c.Param("userId"))
	if !ok {
		return
	}

	profile, err := h.profileService.GetByUserID(target)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	target, ok := h.resolveTarget(c, c.Param("userId"))
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(target, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Perfil atualizado com sucesso", profile)
}
