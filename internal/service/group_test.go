package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

func TestGroupService_Create_DerivesSlug(t *testing.T) {
	d := newFakeData()
	groups := newGroupService(zap.NewNop(), newFakeRepository(d))

	group, err := groups.Create(context.Background(), dto.CreateGroupRequest{
		Title:       "Тестовая группа",
		Description: "about",
	})
	require.NoError(t, err)

	assert.Equal(t, slug.Make("Тестовая группа"), group.Slug)
	assert.Regexp(t, slugPattern, group.Slug)
	assert.Equal(t, "Тестовая группа", group.Title)
}

func TestGroupService_Create_KeepsExplicitSlug(t *testing.T) {
	d := newFakeData()
	groups := newGroupService(zap.NewNop(), newFakeRepository(d))

	group, err := groups.Create(context.Background(), dto.CreateGroupRequest{
		Title: "Some Title",
		Slug:  "custom-slug",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", group.Slug)
}

func TestGroupService_Create_TruncatesLongSlug(t *testing.T) {
	d := newFakeData()
	groups := newGroupService(zap.NewNop(), newFakeRepository(d))

	title := ""
	for i := 0; i < 40; i++ {
		title += "verylong "
	}

	group, err := groups.Create(context.Background(), dto.CreateGroupRequest{Title: title})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(group.Slug), maxSlugLength)
	assert.Regexp(t, slugPattern, group.Slug)
}

func TestGroupService_Create_DuplicateSlug(t *testing.T) {
	d := newFakeData()
	groups := newGroupService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	_, err := groups.Create(ctx, dto.CreateGroupRequest{Title: "Go"})
	require.NoError(t, err)

	// Different title, same derived slug.
	_, err = groups.Create(ctx, dto.CreateGroupRequest{Title: "go"})
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Len(t, d.groups, 1)
}

func TestGroupService_FindBySlug(t *testing.T) {
	d := newFakeData()
	groups := newGroupService(zap.NewNop(), newFakeRepository(d))
	ctx := context.Background()

	created := d.addGroup("Go", "go")

	group, err := groups.FindBySlug(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, created, group)

	_, err = groups.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
