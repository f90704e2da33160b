package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       int64     `json:"id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID uuid.UUID `json:"author_id"`
	GroupID  *int64    `json:"group_id"`
	ImageURL *string   `json:"image_url"`
}

// FeedPost is the post shape rendered in feeds: the post plus its author.
type FeedPost struct {
	Post   Post       `json:"post"`
	Author UserAuthor `json:"author"`
}

// FullPost is the post detail shape: the post, its author and its group, if any.
type FullPost struct {
	Post   Post       `json:"post"`
	Author UserAuthor `json:"author"`
	Group  *Group     `json:"group"`
}
