package handlers

import (
	"academy_backend/internal/middleware"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

// RegisterRoutes регистрирует маршруты обращений.
// Прием обращения публичный; разбор - только персоналу.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuthMW, authMW, staffMW gin.HandlerFunc) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", optionalAuthMW, h.Create)

		contacts.GET("", authMW, staffMW, h.List)
		contacts.GET("/by-modality", authMW, staffMW, h.GroupedByModality)
		contacts.GET("/:id", authMW, staffMW, h.GetByID)
		contacts.PATCH("/:id/status", authMW, staffMW, h.UpdateStatus)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.contactService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Mensagem enviada com sucesso! Entraremos em contato em breve.", response)
}

func (h *ContactHandler) List(c *gin.Context) {
	var query dto.ContactListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.contactService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", response)
}

func (h *ContactHandler) GroupedByModality(c *gin.Context) {
	groups, err := h.contactService.GroupByModality(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", groups)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", contact)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Status atualizado com sucesso", contact)
}
