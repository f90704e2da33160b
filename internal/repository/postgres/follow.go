package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Create is idempotent: the unique (follower_id, followee_id) pair makes a
// duplicate insert a no-op, including under concurrent identical requests.
func (r *followRepo) Create(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(follower_id, followee_id) VALUES($1, $2) ON CONFLICT (follower_id, followee_id) DO NOTHING",
		followerID,
		followeeID,
	)
	return err
}

func (r *followRepo) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2",
		followerID,
		followeeID,
	)
	return err
}

func (r *followRepo) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)",
		followerID,
		followeeID,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
