package dto

type CreatePostRequest struct {
	Text     string  `json:"text" binding:"required"`
	GroupID  *int64  `json:"group_id"`
	ImageURL *string `json:"image_url"`
}

type EditPostRequest struct {
	Text     *string `json:"text"`
	GroupID  *int64  `json:"group_id"`
	ImageURL *string `json:"image_url"`
}
