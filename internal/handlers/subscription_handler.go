package handlers

import (
	"net/http"

	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public route - plan catalog
	r.GET("/plans", h.GetPlans)

	subscription := r.Group("/subscription")
	subscription.Use(middleware.AuthMiddleware())
	{
		subscription.GET("", h.GetCurrentSubscription)
		subscription.GET("/limits", h.GetLinkLimits)
		subscription.GET("/analytics-access", h.GetAnalyticsAccess)
		subscription.POST("/checkout", h.CreateCheckout)
		subscription.POST("/verify", h.VerifyPayment)
		subscription.POST("/cancel", h.CancelSubscription)
	}
}

// GetPlans godoc
// @Summary List the plan catalog
// @Tags subscription
// @Produce json
// @Success 200 {array} models.Plan
// @Router /plans [get]
func (h *SubscriptionHandler) GetPlans(c *gin.Context) {
	plans, err := h.subscriptionService.GetPlans()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetCurrentSubscription godoc
// @Summary Get the user's current subscription and plan
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentSubscription
// @Router /subscription [get]
func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.GetCurrentSubscription(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// GetLinkLimits godoc
// @Summary Get link usage against the plan limit
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LinkLimits
// @Router /subscription/limits [get]
func (h *SubscriptionHandler) GetLinkLimits(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limits, err := h.subscriptionService.GetLinkLimits(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, limits)
}

// GetAnalyticsAccess godoc
// @Summary Check whether the plan includes analytics
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /subscription/analytics-access [get]
func (h *SubscriptionHandler) GetAnalyticsAccess(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	hasAccess, err := h.subscriptionService.HasAnalyticsAccess(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"has_access": hasAccess})
}

// CreateCheckout godoc
// @Summary Create a checkout order for a paid plan
// @Description No local state changes; the order descriptor is handed to the payment widget.
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutRequest true "Plan and billing cycle"
// @Success 201 {object} dto.CheckoutOrder
// @Failure 400 {object} apperrors.ErrorResponse "Free plan cannot be checked out"
// @Router /subscription/checkout [post]
func (h *SubscriptionHandler) CreateCheckout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.subscriptionService.CreateCheckout(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// VerifyPayment godoc
// @Summary Verify a gateway payment and activate the subscription
// @Description Checks the HMAC signature; on success the old subscription is cancelled and the new one activated atomically.
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyPaymentRequest true "Payment callback data"
// @Success 200 {object} models.Subscription
// @Failure 400 {object} apperrors.ErrorResponse "Invalid payment signature"
// @Router /subscription/verify [post]
func (h *SubscriptionHandler) VerifyPayment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.VerifyPayment(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// CancelSubscription godoc
// @Summary Cancel the active subscription
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse "No active subscription"
// @Router /subscription/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.subscriptionService.CancelSubscription(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled successfully"})
}
