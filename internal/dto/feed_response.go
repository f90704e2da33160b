package dto

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/pkg/pagination"
)

type GroupFeed struct {
	Group model.Group                      `json:"group"`
	Page  pagination.Page[*model.FeedPost] `json:"page"`
}

type ProfileFeed struct {
	Author     model.User                       `json:"author"`
	PostsCount int64                            `json:"posts_count"`
	Following  bool                             `json:"following"`
	Page       pagination.Page[*model.FeedPost] `json:"page"`
}
