package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type feedService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFeedService(logger *zap.Logger, repo *repository.Repository) Feed {
	return &feedService{
		logger: logger,
		repo:   repo,
	}
}

// Global is identical for anonymous and authenticated viewers.
func (s *feedService) Global(ctx context.Context, page int) (*pagination.Page[*model.FeedPost], error) {
	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return nil, ErrInternal
	}

	feedPage := pagination.Paginate(posts, FeedPageSize, page)
	return &feedPage, nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*dto.GroupFeed, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s): %s", slug, err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find group(%s) posts: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return &dto.GroupFeed{
		Group: *group,
		Page:  pagination.Paginate(posts, FeedPageSize, page),
	}, nil
}

// Profile reports the author's total post count independent of pagination,
// and whether the viewer follows the author (false for anonymous viewers and
// for the author's own profile).
func (s *feedService) Profile(ctx context.Context, viewerID *uuid.UUID, username string, page int) (*dto.ProfileFeed, error) {
	author, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, author.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts: %s", username, err.Error())
		return nil, ErrInternal
	}

	postsCount, err := s.repo.Postgres.Post.CountByAuthor(ctx, author.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count author(%s) posts: %s", username, err.Error())
		return nil, ErrInternal
	}

	following := false
	if viewerID != nil && *viewerID != author.ID {
		following, err = s.repo.Postgres.Follow.Exists(ctx, *viewerID, author.ID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", viewerID.String(), author.ID.String(), err.Error())
			return nil, ErrInternal
		}
	}

	return &dto.ProfileFeed{
		Author:     *author,
		PostsCount: postsCount,
		Following:  following,
		Page:       pagination.Paginate(posts, FeedPageSize, page),
	}, nil
}

// Following requires an authenticated viewer. Following no one yields an
// empty page, not an error.
func (s *feedService) Following(ctx context.Context, viewerID *uuid.UUID, page int) (*pagination.Page[*model.FeedPost], error) {
	if viewerID == nil {
		return nil, ErrUnauthorized
	}

	posts, err := s.repo.Postgres.Post.FindByFollowedAuthors(ctx, *viewerID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find followed posts for user(%s): %s", viewerID.String(), err.Error())
		return nil, ErrInternal
	}

	feedPage := pagination.Paginate(posts, FeedPageSize, page)
	return &feedPage, nil
}
