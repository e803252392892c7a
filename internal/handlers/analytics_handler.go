package handlers

import (
	"net/http"

	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")

	// Click ingestion comes from anonymous profile visitors.
	analytics.POST("/track", h.TrackClick)

	protected := analytics.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/summary", h.GetSummary)
		protected.GET("/devices", h.GetDeviceStats)
		protected.GET("/browsers", h.GetBrowserStats)
		protected.GET("/referrers", h.GetReferrerStats)
		protected.GET("/today", h.GetTodayClicks)
	}
}

// TrackClick godoc
// @Summary Record a click on a link
// @Description Anonymous. Validates the link exists before recording.
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body dto.TrackClickRequest true "Click data"
// @Success 201 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse "Link not found"
// @Router /analytics/track [post]
func (h *AnalyticsHandler) TrackClick(c *gin.Context) {
	var req dto.TrackClickRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.analyticsService.TrackClick(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Click recorded"})
}

// GetSummary godoc
// @Summary Get the analytics dashboard summary
// @Description Users without analytics in their plan get the coarse total with requires_upgrade set and empty breakdowns.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsSummary
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDeviceStats godoc
// @Summary Get clicks grouped by device
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repositories.ValueClicks
// @Failure 403 {object} apperrors.ErrorResponse "Analytics not included in plan"
// @Router /analytics/devices [get]
func (h *AnalyticsHandler) GetDeviceStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetDeviceStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetBrowserStats godoc
// @Summary Get clicks grouped by browser
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repositories.ValueClicks
// @Failure 403 {object} apperrors.ErrorResponse "Analytics not included in plan"
// @Router /analytics/browsers [get]
func (h *AnalyticsHandler) GetBrowserStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetBrowserStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetReferrerStats godoc
// @Summary Get the top referrers by clicks
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repositories.ValueClicks
// @Failure 403 {object} apperrors.ErrorResponse "Analytics not included in plan"
// @Router /analytics/referrers [get]
func (h *AnalyticsHandler) GetReferrerStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetReferrerStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTodayClicks godoc
// @Summary Get today's click count
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 403 {object} apperrors.ErrorResponse "Analytics not included in plan"
// @Router /analytics/today [get]
func (h *AnalyticsHandler) GetTodayClicks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.analyticsService.GetTodayClicks(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clicks": count})
}
