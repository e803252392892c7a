package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	LinkHandler         *LinkHandler
	AnalyticsHandler    *AnalyticsHandler
	SubscriptionHandler *SubscriptionHandler
	ThemeHandler        *ThemeHandler
}
