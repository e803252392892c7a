package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfileService      ProfileService
	LinkService         LinkService
	AnalyticsService    AnalyticsService
	SubscriptionService SubscriptionService
	ThemeService        ThemeService
}
