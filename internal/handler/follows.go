package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) followsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)
	username := strings.TrimSpace(c.Param("username"))

	if err := h.services.Follow.Follow(c.Request.Context(), user.ID, username); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) followsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)
	username := strings.TrimSpace(c.Param("username"))

	if err := h.services.Follow.Unfollow(c.Request.Context(), user.ID, username); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
