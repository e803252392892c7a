package handlers

import (
	"net/http"

	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	*BaseHandler
	linkService services.LinkService
}

func NewLinkHandler(base *BaseHandler, linkService services.LinkService) *LinkHandler {
	return &LinkHandler{
		BaseHandler: base,
		linkService: linkService,
	}
}

func (h *LinkHandler) RegisterRoutes(r *gin.RouterGroup) {
	links := r.Group("/links")
	links.Use(middleware.AuthMiddleware())
	{
		links.GET("", h.GetLinks)
		links.POST("", h.CreateLink)
		// Registered before the :id routes so "reorder" is never
		// captured as a link id.
		links.POST("/reorder", h.ReorderLinks)
		links.PUT("/:id", h.UpdateLink)
		links.DELETE("/:id", h.DeleteLink)
	}
}

// GetLinks godoc
// @Summary List the user's links in display order
// @Tags links
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Link
// @Router /links [get]
func (h *LinkHandler) GetLinks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	links, err := h.linkService.GetLinks(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// CreateLink godoc
// @Summary Create a link
// @Description Appends the link at the end of the list. Fails with 403 when the plan's link limit is reached.
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLinkRequest true "Link data"
// @Success 201 {object} models.Link
// @Failure 403 {object} apperrors.ErrorResponse "Link limit reached"
// @Router /links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	link, err := h.linkService.CreateLink(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateLink godoc
// @Summary Update a link
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link id"
// @Param request body dto.UpdateLinkRequest true "Fields to update"
// @Success 200 {object} models.Link
// @Failure 404 {object} apperrors.ErrorResponse "Link not found"
// @Router /links/{id} [put]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	linkID := c.Param("id")

	var req dto.UpdateLinkRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	link, err := h.linkService.UpdateLink(userID, linkID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteLink godoc
// @Summary Delete a link
// @Tags links
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse "Link not found"
// @Router /links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	linkID := c.Param("id")

	if err := h.linkService.DeleteLink(userID, linkID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

// ReorderLinks godoc
// @Summary Reorder links
// @Description Applies the whole batch atomically; a single bad id rolls everything back.
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReorderRequest true "Order assignments"
// @Success 200 {array} models.Link
// @Failure 404 {object} apperrors.ErrorResponse "Link not found"
// @Router /links/reorder [post]
func (h *LinkHandler) ReorderLinks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	links, err := h.linkService.ReorderLinks(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}
