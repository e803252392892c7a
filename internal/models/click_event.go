package models

import "time"

// ClickEvent is an append-only record of one click on a public link.
// UserID is denormalized from the link at write time so aggregation
// can filter by owner without joining through links.
type ClickEvent struct {
	BaseModel
	LinkID    string    `gorm:"type:uuid;not null;index" json:"link_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ClickedAt time.Time `gorm:"default:now();not null;index" json:"clicked_at"`
	Device    string    `json:"device"`
	Browser   string    `json:"browser"`
	Referrer  string    `json:"referrer"`

	// Relations
	Link Link `gorm:"foreignKey:LinkID" json:"-"`
}
