package dto

// ThemeRequest covers both create and full update of a custom theme.
// Every color is a 6-digit hex value.
type ThemeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=50"`
	Main       string `json:"main" validate:"required,is-hex-color"`
	Card       string `json:"card" validate:"required,is-hex-color"`
	CardBorder string `json:"card_border" validate:"required,is-hex-color"`
	Text       string `json:"text" validate:"required,is-hex-color"`
	Primary    string `json:"primary" validate:"required,is-hex-color"`
	Accent     string `json:"accent" validate:"required,is-hex-color"`
}
