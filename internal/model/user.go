package model

import "github.com/google/uuid"

// User is a local mirror of the identity service's account record.
// Rows are created and updated by the auth flow, never by domain handlers.
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}
