package handlers

import (
	"net/http"

	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated profile routes plus the two
// anonymous ones: the public profile page and the username check.
type UserHandler struct {
	*BaseHandler
	userService    services.UserService
	profileService services.ProfileService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		userService:    userService,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", h.GetMe)
		profile.PUT("", h.UpdateProfile)
	}

	// Public routes - profile page rendering and signup flow
	r.GET("/users/:username", h.GetPublicProfile)
	r.GET("/username/check", h.CheckUsername)
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /profile [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetMe(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Description Partial update; omitted fields keep their values.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 409 {object} apperrors.ErrorResponse "Username already taken"
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetPublicProfile godoc
// @Summary Get a public profile page payload
// @Description Anonymous. Returns profile fields, visible links in display order and resolved theme colors.
// @Tags public
// @Produce json
// @Param username path string true "Profile username"
// @Success 200 {object} dto.PublicProfile
// @Failure 404 {object} apperrors.ErrorResponse "User not found"
// @Router /users/{username} [get]
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileService.GetPublicProfile(username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CheckUsername godoc
// @Summary Check username availability
// @Tags public
// @Produce json
// @Param username query string true "Candidate username"
// @Success 200 {object} dto.CheckUsernameResponse
// @Router /username/check [get]
func (h *UserHandler) CheckUsername(c *gin.Context) {
	var query dto.CheckUsernameQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.CheckUsername(query.Username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
