package service

import (
	"context"
	"mime/multipart"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/pkg/pagination"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// FeedPageSize is the page size for every feed in the system.
const FeedPageSize = 10

type User interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Group interface {
	Create(ctx context.Context, input dto.CreateGroupRequest) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	Edit(ctx context.Context, editorID uuid.UUID, postID int64, input dto.EditPostRequest) (*model.FullPost, error)
	FindByID(ctx context.Context, id int64) (*dto.PostDetail, error)
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Comment interface {
	Create(ctx context.Context, authorID uuid.UUID, postID int64, input dto.CreateCommentRequest) (*model.Comment, error)
}

type Follow interface {
	Follow(ctx context.Context, followerID uuid.UUID, username string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) error
}

// Feed composes the ordered post sequence for each of the four feed views.
// A nil viewer means the request is anonymous.
type Feed interface {
	Global(ctx context.Context, page int) (*pagination.Page[*model.FeedPost], error)
	Group(ctx context.Context, slug string, page int) (*dto.GroupFeed, error)
	Profile(ctx context.Context, viewerID *uuid.UUID, username string, page int) (*dto.ProfileFeed, error)
	Following(ctx context.Context, viewerID *uuid.UUID, page int) (*pagination.Page[*model.FeedPost], error)
}

type Service struct {
	User
	Group
	Post
	Comment
	Follow
	Feed
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	feed := newFeedService(logger, repo)
	if ttl := viper.GetDuration("cache.global-feed-ttl"); ttl > 0 {
		feed = newCachedFeed(logger, feed, repo.Redis.Default, ttl)
	}

	return &Service{
		User:    newUserService(logger, repo),
		Group:   newGroupService(logger, repo),
		Post:    newPostService(logger, repo),
		Comment: newCommentService(logger, repo),
		Follow:  newFollowService(logger, repo),
		Feed:    feed,
	}
}
