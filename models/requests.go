package models

// CreatePostRequest is the payload for creating a post. Tags must be present
// in the payload but may be an empty array.
type CreatePostRequest struct {
	Title string   `json:"title" validate:"required"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags" validate:"required"`
}

// UpdatePostRequest carries a partial update. Nil fields are left untouched;
// supplied fields must satisfy the same constraints as on create.
type UpdatePostRequest struct {
	Title *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Body  *string   `json:"body,omitempty" validate:"omitempty,min=1"`
	Tags  *[]string `json:"tags,omitempty"`
}
