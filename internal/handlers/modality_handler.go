package handlers

import (
	"academy_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ModalityHandler struct {
	*BaseHandler
	modalityService services.ModalityService
}

func NewModalityHandler(base *BaseHandler, modalityService services.ModalityService) *ModalityHandler {
	return &ModalityHandler{
		BaseHandler:     base,
		modalityService: modalityService,
	}
}

// RegisterRoutes регистрирует публичные маршруты витрины модальностей
func (h *ModalityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	modalities := rg.Group("/modalities")
	{
		modalities.GET("", h.List)
		modalities.GET("/:id", h.GetByID)
	}
}

func (h *ModalityHandler) List(c *gin.Context) {
	modalities, err := h.modalityService.ListActive()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", modalities)
}

func (h *ModalityHandler) GetByID(c *gin.Context) {
	modality, err := h.modalityService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", modality)
}
