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

func TestCommentService_Create(t *testing.T) {
	d := newFakeData()
	comments := newCommentService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	author := d.addUser("leo")
	post := d.addPost(author.ID, nil, time.Now())

	comment, err := comments.Create(ctx, author.ID, post.ID, dto.CreateCommentRequest{Text: "nice one"})
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Text)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, author.ID, comment.AuthorID)
	assert.False(t, comment.Created.IsZero())
}

func TestCommentService_Create_EmptyText(t *testing.T) {
	d := newFakeData()
	comments := newCommentService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	author := d.addUser("leo")
	post := d.addPost(author.ID, nil, time.Now())

	_, err := comments.Create(ctx, author.ID, post.ID, dto.CreateCommentRequest{Text: ""})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = comments.Create(ctx, author.ID, post.ID, dto.CreateCommentRequest{Text: "   \n\t"})
	assert.ErrorIs(t, err, ErrEmptyText)

	assert.Empty(t, d.comments)
}

func TestCommentService_Create_PostNotFound(t *testing.T) {
	d := newFakeData()
	comments := newCommentService(zap.NewNop(), newFakeRepository(d))

	author := d.addUser("leo")

	_, err := comments.Create(context.Background(), author.ID, 42, dto.CreateCommentRequest{Text: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}
