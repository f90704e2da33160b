package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: follower subscribes to followee's posts.
// The (follower_id, followee_id) pair is unique at the storage level.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
