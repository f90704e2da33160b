package postgres

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const feedSelect = `SELECT
	p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image_url, u.username, u.display_name, u.avatar_url
	FROM posts p
	JOIN users u ON p.author_id = u.id`

// Newest-first, ties broken by insertion order.
const feedOrder = " ORDER BY p.pub_date DESC, p.id DESC"

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.PubDate = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(text, pub_date, author_id, group_id, image_url) VALUES($1, $2, $3, $4, $5) RETURNING id",
		post.Text,
		post.PubDate,
		post.AuthorID,
		post.GroupID,
		post.ImageURL,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update never touches pub_date or author_id.
func (r *postRepo) Update(ctx context.Context, post model.Post) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE posts SET text = $1, group_id = $2, image_url = $3 WHERE id = $4",
		post.Text,
		post.GroupID,
		post.ImageURL,
		post.ID,
	)
	return err
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	var (
		post    model.FullPost
		groupID *int64
		title   *string
		slug    *string
		desc    *string
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image_url, u.username, u.display_name, u.avatar_url, g.id, g.title, g.slug, g.description
		FROM posts p
		JOIN users u ON p.author_id = u.id
		LEFT JOIN groups g ON p.group_id = g.id
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.Post.ID,
		&post.Post.Text,
		&post.Post.PubDate,
		&post.Post.AuthorID,
		&post.Post.GroupID,
		&post.Post.ImageURL,
		&post.Author.Username,
		&post.Author.DisplayName,
		&post.Author.AvatarURL,
		&groupID,
		&title,
		&slug,
		&desc,
	); err != nil {
		return nil, err
	}

	if groupID != nil {
		post.Group = &model.Group{
			ID:          *groupID,
			Title:       *title,
			Slug:        *slug,
			Description: *desc,
		}
	}

	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+feedOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) FindByGroup(ctx context.Context, groupID int64) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+" WHERE p.group_id = $1"+feedOrder, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+" WHERE p.author_id = $1"+feedOrder, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

// FindByFollowedAuthors merges the posts of every author the viewer follows
// into one timestamp-ordered sequence, not grouped per author.
func (r *postRepo) FindByFollowedAuthors(ctx context.Context, followerID uuid.UUID) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(
		ctx,
		feedSelect+" JOIN follows f ON f.followee_id = p.author_id WHERE f.follower_id = $1"+feedOrder,
		followerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE author_id = $1", authorID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanFeedPosts(rows pgx.Rows) ([]*model.FeedPost, error) {
	var posts []*model.FeedPost
	for rows.Next() {
		var post model.FeedPost
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.Text,
			&post.Post.PubDate,
			&post.Post.AuthorID,
			&post.Post.GroupID,
			&post.Post.ImageURL,
			&post.Author.Username,
			&post.Author.DisplayName,
			&post.Author.AvatarURL,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
