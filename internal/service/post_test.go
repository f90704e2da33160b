package service

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostService_Create(t *testing.T) {
	d := newFakeData()
	posts := newPostService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	author := d.addUser("leo")
	group := d.addGroup("Go", "go")

	post, err := posts.Create(ctx, author.ID, dto.CreatePostRequest{Text: "hello", GroupID: &group.ID})
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, author.ID, post.AuthorID)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, group.ID, *post.GroupID)
	assert.False(t, post.PubDate.IsZero())
}

func TestPostService_Create_EmptyText(t *testing.T) {
	d := newFakeData()
	posts := newPostService(zap.NewNop(), newFakeRepository(d))

	author := d.addUser("leo")

	_, err := posts.Create(context.Background(), author.ID, dto.CreatePostRequest{Text: "  "})
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, d.posts)
}

func TestPostService_Edit(t *testing.T) {
	d := newFakeData()
	posts := newPostService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	author := d.addUser("leo")
	pubDate := time.Now().Add(-time.Hour)
	post := d.addPost(author.ID, nil, pubDate)

	newText := "edited"
	updated, err := posts.Edit(ctx, author.ID, post.ID, dto.EditPostRequest{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Post.Text)

	// pub_date survives edits untouched.
	assert.True(t, updated.Post.PubDate.Equal(pubDate))
}

func TestPostService_Edit_NotAuthor(t *testing.T) {
	d := newFakeData()
	posts := newPostService(zap.NewNop(), newFakeRepository(d))

	author := d.addUser("leo")
	other := d.addUser("mia")
	post := d.addPost(author.ID, nil, time.Now())

	newText := "edited"
	_, err := posts.Edit(context.Background(), other.ID, post.ID, dto.EditPostRequest{Text: &newText})
	assert.ErrorIs(t, err, ErrNotPostAuthor)
	assert.Equal(t, "post text", d.posts[0].Text)
}

func TestPostService_FindByID(t *testing.T) {
	d := newFakeData()
	posts := newPostService(zap.NewNop(), newFakeRepository(d))
	comments := newCommentService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	author := d.addUser("leo")
	commenter := d.addUser("mia")
	post := d.addPost(author.ID, nil, time.Now())
	d.addPost(author.ID, nil, time.Now())

	_, err := comments.Create(ctx, commenter.ID, post.ID, dto.CreateCommentRequest{Text: "first"})
	require.NoError(t, err)
	_, err = comments.Create(ctx, commenter.ID, post.ID, dto.CreateCommentRequest{Text: "second"})
	require.NoError(t, err)

	detail, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, detail.Post.Post.ID)
	assert.Equal(t, "leo", detail.Post.Author.Username)
	assert.EqualValues(t, 2, detail.AuthorPostsCount)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "mia", detail.Comments[0].Author.Username)
}

func TestPostService_FindByID_NotFound(t *testing.T) {
	posts := newPostService(zap.NewNop(), newFakeRepository(newFakeData()))

	_, err := posts.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
