package handlers

import (
	"academy_backend/internal/apperrors"
	"academy_backend/internal/middleware"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
	maxFileSize  int64
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService, maxFileSize int64) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
		maxFileSize:  maxFileSize,
	}
}

// RegisterRoutes регистрирует маршруты медиа-галереи.
// Чтение и загрузка публичные (загрузка с опциональной идентичностью,
// как на исходном сайте); изменение и удаление - только персоналу.
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuthMW, authMW, staffMW gin.HandlerFunc) {
	media := rg.Group("/media")
	{
		media.GET("", h.List)
		media.GET("/modality/:modalityId", h.ListByModality)
		media.GET("/:id", h.GetByID)

		media.POST("/upload", optionalAuthMW, h.Upload)
		media.POST("/url", optionalAuthMW, h.AddByURL)

		media.PUT("/:id", authMW, staffMW, h.Update)
		media.DELETE("/:id", authMW, staffMW, h.Delete)
	}
}

func (h *MediaHandler) List(c *gin.Context) {
	var query dto.MediaListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.mediaService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", response)
}

func (h *MediaHandler) ListByModality(c *gin.Context) {
	var query dto.MediaListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.mediaService.ListByModality(c.Request.Context(), c.Param("modalityId"), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", response)
}

func (h *MediaHandler) GetByID(c *gin.Context) {
	response, err := h.mediaService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", response)
}

func (h *MediaHandler) Upload(c *gin.Context) {
	var req dto.UploadMediaRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileMissing)
		return
	}
	if file.Size > h.maxFileSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return
	}
	req.File = file

	response, err := h.mediaService.Upload(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Mídia enviada com sucesso", response)
}

func (h *MediaHandler) AddByURL(c *gin.Context) {
	var req dto.AddMediaByURLRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.mediaService.AddByURL(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Mídia adicionada com sucesso", response)
}

func (h *MediaHandler) Update(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.mediaService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Mídia atualizada com sucesso", response)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Mídia excluída com sucesso", nil)
}
