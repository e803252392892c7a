package handlers

import (
	"net/http"

	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	*BaseHandler
	themeService services.ThemeService
}

func NewThemeHandler(base *BaseHandler, themeService services.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		BaseHandler:  base,
		themeService: themeService,
	}
}

func (h *ThemeHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public route - preset catalog
	r.GET("/themes/presets", h.GetPresets)

	themes := r.Group("/themes")
	themes.Use(middleware.AuthMiddleware())
	{
		themes.GET("", h.GetMyThemes)
		themes.POST("", h.CreateTheme)
		themes.GET("/:id", h.GetTheme)
		themes.PUT("/:id", h.UpdateTheme)
		themes.DELETE("/:id", h.DeleteTheme)
	}
}

// GetPresets godoc
// @Summary List built-in theme presets
// @Tags themes
// @Produce json
// @Success 200 {object} map[string]models.ThemeColors
// @Router /themes/presets [get]
func (h *ThemeHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, h.themeService.GetPresets())
}

// GetMyThemes godoc
// @Summary List the user's custom themes
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CustomTheme
// @Router /themes [get]
func (h *ThemeHandler) GetMyThemes(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	themes, err := h.themeService.GetMyThemes(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

// GetTheme godoc
// @Summary Get one custom theme
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Theme id"
// @Success 200 {object} models.CustomTheme
// @Failure 404 {object} apperrors.ErrorResponse "Theme not found"
// @Router /themes/{id} [get]
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	theme, err := h.themeService.GetTheme(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// CreateTheme godoc
// @Summary Create a custom theme
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ThemeRequest true "Theme colors"
// @Success 201 {object} models.CustomTheme
// @Router /themes [post]
func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ThemeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	theme, err := h.themeService.CreateTheme(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, theme)
}

// UpdateTheme godoc
// @Summary Update a custom theme
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Theme id"
// @Param request body dto.ThemeRequest true "Theme colors"
// @Success 200 {object} models.CustomTheme
// @Failure 404 {object} apperrors.ErrorResponse "Theme not found"
// @Router /themes/{id} [put]
func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ThemeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	theme, err := h.themeService.UpdateTheme(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// DeleteTheme godoc
// @Summary Delete a custom theme
// @Description If the theme is the user's active one, the profile falls back to the default preset.
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Theme id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse "Theme not found"
// @Router /themes/{id} [delete]
func (h *ThemeHandler) DeleteTheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.themeService.DeleteTheme(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme deleted successfully"})
}
