package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) feedGlobal(c *gin.Context) {
	page, err := h.services.Feed.Global(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) feedGroup(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	feed, err := h.services.Feed.Group(c.Request.Context(), slug, pageFromQuery(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *Handler) feedProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	feed, err := h.services.Feed.Profile(c.Request.Context(), h.getViewerID(c), username, pageFromQuery(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *Handler) feedFollowing(c *gin.Context) {
	page, err := h.services.Feed.Following(c.Request.Context(), h.getViewerID(c), pageFromQuery(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
