package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidUserID = errors.New("invalid user ID")
)

func (h *Handler) errorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotPostAuthor):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrSlugTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrFileMustBeImage):
		status = http.StatusBadRequest
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
