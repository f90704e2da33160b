package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User interface {
	Create(ctx context.Context, user model.User) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Group interface {
	Create(ctx context.Context, group model.Group) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Update(ctx context.Context, post model.Post) error
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAll(ctx context.Context) ([]*model.FeedPost, error)
	FindByGroup(ctx context.Context, groupID int64) ([]*model.FeedPost, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.FeedPost, error)
	FindByFollowedAuthors(ctx context.Context, followerID uuid.UUID) ([]*model.FeedPost, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64) ([]*model.FullComment, error)
}

type Follow interface {
	Create(ctx context.Context, followerID, followeeID uuid.UUID) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

type PostgresRepository struct {
	User
	Group
	Post
	Comment
	Follow
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:    newUserRepo(db),
		Group:   newGroupRepo(db),
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Follow:  newFollowRepo(db),
	}
}
