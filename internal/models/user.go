package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Username     *string `gorm:"uniqueIndex" json:"username"` // nil until claimed
	Bio          string  `json:"bio"`
	Image        string  `json:"image"`
	// Theme is either a preset key ("default", "dark", ...) or the id
	// of a CustomTheme owned by this user.
	Theme       string         `gorm:"default:'default';not null" json:"theme"`
	ButtonStyle string         `gorm:"default:'rounded';not null" json:"button_style"`
	SocialLinks datatypes.JSON `gorm:"type:jsonb" json:"social_links"` // [{"platform": "...", "url": "..."}]

	// Relations
	Links        []Link        `gorm:"foreignKey:UserID" json:"-"`
	Subscription *Subscription `gorm:"foreignKey:UserID" json:"-"`
}
