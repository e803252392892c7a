package models

type Link struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title  string `gorm:"not null" json:"title"`
	URL    string `gorm:"not null" json:"url"`
	Icon   string `json:"icon"`
	// Visible toggles display on the public profile independently of
	// ordering.
	Visible bool `gorm:"default:true;not null" json:"visible"`
	// Order drives display sequence, ascending. Gaps and duplicates
	// are tolerated; sort is stable.
	Order int `gorm:"column:sort_order;default:0;not null" json:"order"`
}
