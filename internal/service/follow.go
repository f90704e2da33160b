package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type followService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFollowService(logger *zap.Logger, repo *repository.Repository) Follow {
	return &followService{
		logger: logger,
		repo:   repo,
	}
}

// Follow is idempotent: following an already-followed author succeeds without
// creating a second edge. The storage-level unique pair keeps that true under
// concurrent identical requests.
func (s *followService) Follow(ctx context.Context, followerID uuid.UUID, username string) error {
	followee, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if followee.ID == followerID {
		return ErrSelfFollow
	}

	if err := s.repo.Postgres.Follow.Create(ctx, followerID, followee.ID); err != nil {
		s.logger.Sugar().Errorf("failed to create follow(%s -> %s): %s", followerID.String(), followee.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// Unfollow treats a missing edge as a no-op success.
func (s *followService) Unfollow(ctx context.Context, followerID uuid.UUID, username string) error {
	followee, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repo.Postgres.Follow.Delete(ctx, followerID, followee.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow(%s -> %s): %s", followerID.String(), followee.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *followService) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return user, nil
}
