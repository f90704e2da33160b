package handler

import (
	"context"
	"os"
	"strconv"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.feedGlobal)
			posts.GET("/following", h.notRequiredAuthMiddleware, h.feedFollowing)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.POST("/uploadImage", h.authMiddleware, h.postsUploadImage)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.GET("/comments", h.commentsGet)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
			}
		}

		groups := v1.Group("/groups")
		{
			groups.GET("", h.groupsGet)
			groups.POST("", h.authMiddleware, h.groupsCreate)
			groups.GET("/:slug", h.feedGroup)
		}

		users := v1.Group("/users")
		{
			users.GET("/:username", h.notRequiredAuthMiddleware, h.feedProfile)
			users.POST("/:username/follow", h.authMiddleware, h.followsCreate)
			users.DELETE("/:username/follow", h.authMiddleware, h.followsDelete)
		}
	}

	internal := r.Group("/internal", h.internalMiddleware)
	{
		internal.PATCH("/users/:userID", h.usersUpdate)
		internal.DELETE("/users/:userID", h.usersDelete)
	}

	return r
}

func (h *Handler) getUserDataFromAccessToken(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	return h.services.User.CreateOrGet(ctx, id, accessToken)
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}

// getViewerID returns nil for anonymous requests.
func (h *Handler) getViewerID(c *gin.Context) *uuid.UUID {
	user := h.getUserFromRequest(c)
	if user == nil {
		return nil
	}

	return &user.ID
}

// pageFromQuery defaults to the first page when the parameter is absent or
// not numeric.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}

	return page
}
