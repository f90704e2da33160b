package service

import "errors"

var (
	ErrInternal      = errors.New("internal server error")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrUnauthorized  = errors.New("authentication required")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrEmptyText     = errors.New("text must not be empty")
	ErrSlugTaken     = errors.New("group slug is already taken")
	ErrNotPostAuthor = errors.New("only the author can edit the post")

	ErrFileMustBeImage          = errors.New("file must be an image")
	ErrFailedToUploadImageToCDN = errors.New("failed to upload post image to CDN")
)
