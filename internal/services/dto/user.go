package dto

import (
	"encoding/json"

	"linkbio_backend/internal/models"
)

// UpdateProfileRequest is a partial update; nil fields are untouched.
type UpdateProfileRequest struct {
	Username    *string         `json:"username" validate:"omitempty,min=3,max=30,is-username"`
	Bio         *string         `json:"bio" validate:"omitempty,max=160"`
	Image       *string         `json:"image" validate:"omitempty,url"`
	Theme       *string         `json:"theme"`
	ButtonStyle *string         `json:"button_style" validate:"omitempty,is-button-style"`
	SocialLinks json.RawMessage `json:"social_links"`
}

type CheckUsernameQuery struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=30,is-username"`
}

type CheckUsernameResponse struct {
	Available bool `json:"available"`
}

// PublicProfile is the anonymous rendering payload: profile fields,
// visible links in display order, and the resolved theme colors.
type PublicProfile struct {
	Username    string             `json:"username"`
	Name        string             `json:"name"`
	Bio         string             `json:"bio"`
	Image       string             `json:"image"`
	ButtonStyle string             `json:"button_style"`
	SocialLinks json.RawMessage    `json:"social_links"`
	Links       []models.Link      `json:"links"`
	Theme       models.ThemeColors `json:"theme"`
}
