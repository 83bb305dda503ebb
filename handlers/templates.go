package handlers

import (
	"net/http"

	"reelkit-api/repository"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
)

type TemplatesHandler struct {
	templates *repository.TemplatesRepository
}

func NewTemplatesHandler(templates *repository.TemplatesRepository) *TemplatesHandler {
	return &TemplatesHandler{templates: templates}
}

func (h *TemplatesHandler) GetTemplates(c *gin.Context) {
	docs, err := h.templates.List(c.Request.Context(), listLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(docs)})
}
