package dto

import "linkbio_backend/internal/repositories"

type CreateLinkRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
	URL   string `json:"url" validate:"required,url"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
}

// UpdateLinkRequest is a partial update; nil fields are untouched.
type UpdateLinkRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	URL     *string `json:"url" validate:"omitempty,url"`
	Icon    *string `json:"icon"`
	Visible *bool   `json:"visible"`
}

type ReorderRequest struct {
	Items []repositories.OrderAssignment `json:"items" validate:"required,min=1,dive"`
}

type LinkLimits struct {
	CurrentCount  int64 `json:"current_count"`
	Limit         int   `json:"limit"`
	CanCreateMore bool  `json:"can_create_more"`
	IsUnlimited   bool  `json:"is_unlimited"`
}
