package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barakatna/platform/backend/internal/models"
	"github.com/barakatna/platform/backend/internal/services"
)

type ClientTypeHandler struct {
	service *services.ClientTypeService
}

func NewClientTypeHandler(service *services.ClientTypeService) *ClientTypeHandler {
	return &ClientTypeHandler{service: service}
}

func (h *ClientTypeHandler) List(c *gin.Context) {
	types, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list client types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_types": types})
}

func (h *ClientTypeHandler) Get(c *gin.Context) {
	ct, err := h.service.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrClientTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client type"})
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (h *ClientTypeHandler) Create(c *gin.Context) {
	var ct models.ClientType
	if err := c.ShouldBindJSON(&ct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(&ct); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClientType), errors.Is(err, services.ErrInvalidConfigJSON):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrClientTypeCodeTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client type"})
		}
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (h *ClientTypeHandler) Update(c *gin.Context) {
	var ct models.ClientType
	if err := c.ShouldBindJSON(&ct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Param("code"), &ct)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client type not found"})
		case errors.Is(err, services.ErrInvalidClientType), errors.Is(err, services.ErrInvalidConfigJSON):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client type"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientTypeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("code")); err != nil {
		switch {
		case errors.Is(err, services.ErrClientTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client type not found"})
		case errors.Is(err, services.ErrClientTypeInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client type"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client type deleted"})
}
