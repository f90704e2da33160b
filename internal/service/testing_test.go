package service

import (
	"context"
	"sort"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeData is an in-memory stand-in for the postgres schema, mirroring its
// contracts: newest-first ordering with insertion-order tie-breaks, unique
// group slugs, unique follow pairs.
type fakeData struct {
	users         map[uuid.UUID]*model.User
	groups        []*model.Group
	posts         []*model.Post
	comments      []*model.Comment
	follows       map[[2]uuid.UUID]struct{}
	nextGroupID   int64
	nextPostID    int64
	nextCommentID int64
}

func newFakeData() *fakeData {
	return &fakeData{
		users:   make(map[uuid.UUID]*model.User),
		follows: make(map[[2]uuid.UUID]struct{}),
	}
}

func newFakeRepository(d *fakeData) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:    &fakeUserRepo{d: d},
			Group:   &fakeGroupRepo{d: d},
			Post:    &fakePostRepo{d: d},
			Comment: &fakeCommentRepo{d: d},
			Follow:  &fakeFollowRepo{d: d},
		},
	}
}

func (d *fakeData) addUser(username string) *model.User {
	user := &model.User{ID: uuid.New(), Username: username}
	d.users[user.ID] = user
	return user
}

func (d *fakeData) addPost(authorID uuid.UUID, groupID *int64, pubDate time.Time) *model.Post {
	d.nextPostID++
	post := &model.Post{
		ID:       d.nextPostID,
		Text:     "post text",
		PubDate:  pubDate,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	d.posts = append(d.posts, post)
	return post
}

func (d *fakeData) addGroup(title, slug string) *model.Group {
	d.nextGroupID++
	group := &model.Group{ID: d.nextGroupID, Title: title, Slug: slug}
	d.groups = append(d.groups, group)
	return group
}

func (d *fakeData) author(id uuid.UUID) model.UserAuthor {
	user := d.users[id]
	return model.UserAuthor{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}
}

func (d *fakeData) feedPosts(filter func(*model.Post) bool) []*model.FeedPost {
	var out []*model.FeedPost
	for _, post := range d.posts {
		if filter(post) {
			out = append(out, &model.FeedPost{Post: *post, Author: d.author(post.AuthorID)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Post.PubDate.Equal(out[j].Post.PubDate) {
			return out[i].Post.ID > out[j].Post.ID
		}
		return out[i].Post.PubDate.After(out[j].Post.PubDate)
	})
	return out
}

type fakeUserRepo struct {
	d *fakeData
}

func (r *fakeUserRepo) Create(ctx context.Context, user model.User) error {
	r.d.users[user.ID] = &user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.d.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.d.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.d.users, id)
	return nil
}

type fakeGroupRepo struct {
	d *fakeData
}

func (r *fakeGroupRepo) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	for _, existing := range r.d.groups {
		if existing.Slug == group.Slug {
			return nil, &pgconn.PgError{Code: "23505", ConstraintName: "groups_slug_key"}
		}
	}
	created := r.d.addGroup(group.Title, group.Slug)
	created.Description = group.Description
	return created, nil
}

func (r *fakeGroupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	return r.d.groups, nil
}

func (r *fakeGroupRepo) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	for _, group := range r.d.groups {
		if group.Slug == slug {
			return group, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakePostRepo struct {
	d *fakeData
}

func (r *fakePostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	created := r.d.addPost(post.AuthorID, post.GroupID, time.Now())
	created.Text = post.Text
	created.ImageURL = post.ImageURL
	return created, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post model.Post) error {
	for _, existing := range r.d.posts {
		if existing.ID == post.ID {
			existing.Text = post.Text
			existing.GroupID = post.GroupID
			existing.ImageURL = post.ImageURL
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	for _, post := range r.d.posts {
		if post.ID == id {
			full := &model.FullPost{Post: *post, Author: r.d.author(post.AuthorID)}
			if post.GroupID != nil {
				for _, group := range r.d.groups {
					if group.ID == *post.GroupID {
						full.Group = group
					}
				}
			}
			return full, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePostRepo) FindAll(ctx context.Context) ([]*model.FeedPost, error) {
	return r.d.feedPosts(func(*model.Post) bool { return true }), nil
}

func (r *fakePostRepo) FindByGroup(ctx context.Context, groupID int64) ([]*model.FeedPost, error) {
	return r.d.feedPosts(func(p *model.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), nil
}

func (r *fakePostRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.FeedPost, error) {
	return r.d.feedPosts(func(p *model.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *fakePostRepo) FindByFollowedAuthors(ctx context.Context, followerID uuid.UUID) ([]*model.FeedPost, error) {
	return r.d.feedPosts(func(p *model.Post) bool {
		_, ok := r.d.follows[[2]uuid.UUID{followerID, p.AuthorID}]
		return ok
	}), nil
}

func (r *fakePostRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	for _, post := range r.d.posts {
		if post.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeCommentRepo struct {
	d *fakeData
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	r.d.nextCommentID++
	comment.ID = r.d.nextCommentID
	comment.Created = time.Now()
	r.d.comments = append(r.d.comments, &comment)
	return &comment, nil
}

func (r *fakeCommentRepo) FindPostComments(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	var out []*model.FullComment
	for _, comment := range r.d.comments {
		if comment.PostID == postID {
			out = append(out, &model.FullComment{Comment: *comment, Author: r.d.author(comment.AuthorID)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Comment.Created.Equal(out[j].Comment.Created) {
			return out[i].Comment.ID > out[j].Comment.ID
		}
		return out[i].Comment.Created.After(out[j].Comment.Created)
	})
	return out, nil
}

type fakeFollowRepo struct {
	d *fakeData
}

func (r *fakeFollowRepo) Create(ctx context.Context, followerID, followeeID uuid.UUID) error {
	r.d.follows[[2]uuid.UUID{followerID, followeeID}] = struct{}{}
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	delete(r.d.follows, [2]uuid.UUID{followerID, followeeID})
	return nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	_, ok := r.d.follows[[2]uuid.UUID{followerID, followeeID}]
	return ok, nil
}
