package models

// CustomTheme is a user-authored color configuration referenced from
// User.Theme by id. All six colors are 6-digit hex values.
type CustomTheme struct {
	BaseModel
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Main       string `gorm:"not null" json:"main"`
	Card       string `gorm:"not null" json:"card"`
	CardBorder string `gorm:"not null" json:"card_border"`
	Text       string `gorm:"not null" json:"text"`
	Primary    string `gorm:"not null" json:"primary"`
	Accent     string `gorm:"not null" json:"accent"`
}

// ThemeColors is the resolved color set handed to profile rendering,
// regardless of whether it came from a preset or a custom theme.
type ThemeColors struct {
	Main       string `json:"main"`
	Card       string `json:"card"`
	CardBorder string `json:"card_border"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
}

// DefaultThemeKey is the preset every dangling or unset theme
// reference falls back to.
const DefaultThemeKey = "default"

// PresetThemes is the built-in catalog selectable by key with no
// per-user storage.
var PresetThemes = map[string]ThemeColors{
	"default": {
		Main:       "#F9FAFB",
		Card:       "#FFFFFF",
		CardBorder: "#E5E7EB",
		Text:       "#111827",
		Primary:    "#4F46E5",
		Accent:     "#818CF8",
	},
	"dark": {
		Main:       "#111827",
		Card:       "#1F2937",
		CardBorder: "#374151",
		Text:       "#F9FAFB",
		Primary:    "#6366F1",
		Accent:     "#A5B4FC",
	},
	"ocean": {
		Main:       "#ECFEFF",
		Card:       "#FFFFFF",
		CardBorder: "#A5F3FC",
		Text:       "#164E63",
		Primary:    "#0891B2",
		Accent:     "#22D3EE",
	},
	"sunset": {
		Main:       "#FFF7ED",
		Card:       "#FFFFFF",
		CardBorder: "#FED7AA",
		Text:       "#7C2D12",
		Primary:    "#EA580C",
		Accent:     "#FB923C",
	},
	"forest": {
		Main:       "#F0FDF4",
		Card:       "#FFFFFF",
		CardBorder: "#BBF7D0",
		Text:       "#14532D",
		Primary:    "#16A34A",
		Accent:     "#4ADE80",
	},
}

// IsPresetTheme reports whether key names a built-in theme.
func IsPresetTheme(key string) bool {
	_, ok := PresetThemes[key]
	return ok
}
