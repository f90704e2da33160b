package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const maxSlugLength = 100

const pgUniqueViolation = "23505"

type groupService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newGroupService(logger *zap.Logger, repo *repository.Repository) Group {
	return &groupService{
		logger: logger,
		repo:   repo,
	}
}

// Create derives the slug from the title when none is supplied. The slug is
// assigned exactly once; nothing ever regenerates it afterwards.
func (s *groupService) Create(ctx context.Context, input dto.CreateGroupRequest) (*model.Group, error) {
	groupSlug := strings.TrimSpace(input.Slug)
	if groupSlug == "" {
		groupSlug = deriveSlug(input.Title)
	}

	group := model.Group{
		Title:       input.Title,
		Slug:        groupSlug,
		Description: input.Description,
	}

	createdGroup, err := s.repo.Postgres.Group.Create(ctx, group)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrSlugTaken
		}

		s.logger.Sugar().Errorf("failed to create group(%s): %s", group.Slug, err.Error())
		return nil, ErrInternal
	}

	return createdGroup, nil
}

func (s *groupService) FindAll(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.repo.Postgres.Group.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find groups: %s", err.Error())
		return nil, ErrInternal
	}

	return groups, nil
}

func (s *groupService) FindBySlug(ctx context.Context, groupSlug string) (*model.Group, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, groupSlug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s): %s", groupSlug, err.Error())
		return nil, ErrInternal
	}

	return group, nil
}

// deriveSlug transliterates the title into a URL-safe slug, truncated to the
// column limit. slug.Make output is ASCII, so byte truncation is safe.
func deriveSlug(title string) string {
	derived := slug.Make(title)
	if len(derived) > maxSlugLength {
		derived = strings.TrimRight(derived[:maxSlugLength], "-")
	}
	return derived
}
