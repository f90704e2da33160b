package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const pgForeignKeyViolation = "23503"

type postService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	httpClient *http.Client
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger:     logger,
		repo:       repo,
		httpClient: &http.Client{},
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	post := model.Post{
		Text:     input.Text,
		AuthorID: authorID,
		GroupID:  input.GroupID,
		ImageURL: input.ImageURL,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

// Edit applies the provided fields to the post. pub_date and author never
// change; a non-author editor is rejected.
func (s *postService) Edit(ctx context.Context, editorID uuid.UUID, postID int64, input dto.EditPostRequest) (*model.FullPost, error) {
	existing, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if existing.Post.AuthorID != editorID {
		return nil, ErrNotPostAuthor
	}

	post := existing.Post
	if input.Text != nil {
		if strings.TrimSpace(*input.Text) == "" {
			return nil, ErrEmptyText
		}
		post.Text = *input.Text
	}
	if input.GroupID != nil {
		post.GroupID = input.GroupID
	}
	if input.ImageURL != nil {
		post.ImageURL = input.ImageURL
	}

	if err := s.repo.Postgres.Post.Update(ctx, post); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to update post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return s.findPost(ctx, postID)
}

// FindByID returns the post detail view: the post, its comments newest-first
// and the author's total post count.
func (s *postService) FindByID(ctx context.Context, id int64) (*dto.PostDetail, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", id, err.Error())
		return nil, ErrInternal
	}

	authorPostsCount, err := s.repo.Postgres.Post.CountByAuthor(ctx, post.Post.AuthorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count author(%s) posts: %s", post.Post.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	return &dto.PostDetail{
		Post:             *post,
		Comments:         comments,
		AuthorPostsCount: authorPostsCount,
	}, nil
}

func (s *postService) findPost(ctx context.Context, id int64) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

// UploadImage forwards the file to the CDN collaborator and returns the
// opaque URL it assigns. The content itself is never inspected here beyond
// the content-type gate.
func (s *postService) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", ErrFileMustBeImage
	}

	endpoint := "/upload"
	url := viper.GetString("cdn.origin") + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create file part for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		s.logger.Sugar().Errorf("failed to copy file content for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.WriteField("path", "post-images"); err != nil {
		s.logger.Sugar().Errorf("failed to write path field for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.Close(); err != nil {
		s.logger.Sugar().Errorf("failed to close writer for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do CDN request: %s", err.Error())
		return "", ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from CDN: %s", err.Error())
		return "", ErrInternal
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from CDN: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from CDN endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", ErrFailedToUploadImageToCDN
	}

	return string(body), nil
}
