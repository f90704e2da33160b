package handler

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

// internalMiddleware guards the service-to-service sync endpoints the
// identity service calls when accounts change upstream.
func (h *Handler) internalMiddleware(c *gin.Context) {
	token := c.GetHeader("X-Internal-Token")
	secret := os.Getenv("INTERNAL_API_TOKEN")

	if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Next()
}
