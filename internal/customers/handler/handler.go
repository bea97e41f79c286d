package handler

import (
	"errors"
	"net/http"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/customers/processor"
	"air-relatorios/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CustomersProcessor
	logger    *observability.Logger
}

func New(processor processor.CustomersProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	CNPJ    *string `json:"cnpj" binding:"omitempty,max=20"`
	Contact *string `json:"contact" binding:"omitempty,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=200"`
	CNPJ    *string `json:"cnpj" binding:"omitempty,max=20"`
	Contact *string `json:"contact" binding:"omitempty,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (h *Handler) HandleCreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	client, err := h.processor.CreateClient(c.Request.Context(), processor.ClientParams{
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Contact: req.Contact,
		Email:   req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) HandleListClients(c *gin.Context) {
	clients, err := h.processor.ListClients(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) HandleGetClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	client, err := h.processor.GetClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) HandleUpdateClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	client, err := h.processor.UpdateClient(c.Request.Context(), id, processor.UpdateClientParams{
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Contact: req.Contact,
		Email:   req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) HandleDeleteClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	if err := h.processor.DeleteClient(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleCreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	cat, err := h.processor.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) HandleListCategories(c *gin.Context) {
	cats, err := h.processor.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) HandleRenameCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid category ID format"))
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	cat, err := h.processor.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) HandleDeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid category ID format"))
		return
	}
	if err := h.processor.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func clientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid client ID format"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrClientNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Client not found"))
	case errors.Is(err, processor.ErrClientExists):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "A client with this name already exists"))
	case errors.Is(err, processor.ErrClientInUse):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "Client still has campaigns"))
	case errors.Is(err, processor.ErrCategoryNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Category not found"))
	case errors.Is(err, processor.ErrCategoryExists):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "Category already exists"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
