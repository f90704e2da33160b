package dto

import "github.com/BloggingApp/blog-service/internal/model"

type PostDetail struct {
	Post             model.FullPost       `json:"post"`
	Comments         []*model.FullComment `json:"comments"`
	AuthorPostsCount int64                `json:"author_posts_count"`
}
