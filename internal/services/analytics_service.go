package services

import (
	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"
)

const (
	trendWindowDays    = 7
	referrerStatsLimit = 10
)

type AnalyticsService interface {
	// TrackClick is the one unauthenticated write; it validates the link
	// exists before recording.
	TrackClick(req *dto.TrackClickRequest) error
	GetSummary(userID string) (*dto.AnalyticsSummary, error)
	GetDeviceStats(userID string) ([]repositories.ValueClicks, error)
	GetBrowserStats(userID string) ([]repositories.ValueClicks, error)
	GetReferrerStats(userID string) ([]repositories.ValueClicks, error)
	GetTodayClicks(userID string) (int64, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	linkRepo      repositories.LinkRepository
	entitlements  EntitlementResolver
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	linkRepo repositories.LinkRepository,
	entitlements EntitlementResolver,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		linkRepo:      linkRepo,
		entitlements:  entitlements,
	}
}

func (s *analyticsService) TrackClick(req *dto.TrackClickRequest) error {
	link, err := s.linkRepo.FindByID(req.LinkID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLinkNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return err
	}

	// The owner id is denormalized onto the event so per-user rollups
	// don't need a join on the hot path.
	return s.analyticsRepo.CreateEvent(&models.ClickEvent{
		LinkID:   link.ID,
		UserID:   link.UserID,
		Device:   req.Device,
		Browser:  req.Browser,
		Referrer: req.Referrer,
	})
}

// GetSummary degrades instead of failing for users whose plan excludes
// analytics: they still see the coarse total, with the upgrade flag set
// and the breakdowns empty.
func (s *analyticsService) GetSummary(userID string) (*dto.AnalyticsSummary, error) {
	ents, err := s.entitlements.ResolveEntitlements(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.analyticsRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &dto.AnalyticsSummary{
		TotalClicks:    total,
		ClicksPerLink:  []repositories.LinkClicks{},
		ClicksOverTime: []repositories.DateClicks{},
	}

	if !ents.AnalyticsEnabled {
		summary.RequiresUpgrade = true
		return summary, nil
	}

	perLink, err := s.analyticsRepo.ClicksPerLink(userID)
	if err != nil {
		return nil, err
	}
	overTime, err := s.analyticsRepo.ClicksOverTime(userID, trendWindowDays)
	if err != nil {
		return nil, err
	}

	if perLink != nil {
		summary.ClicksPerLink = perLink
	}
	if overTime != nil {
		summary.ClicksOverTime = overTime
	}
	return summary, nil
}

func (s *analyticsService) GetDeviceStats(userID string) ([]repositories.ValueClicks, error) {
	if err := s.requireAnalytics(userID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.DeviceStats(userID)
}

func (s *analyticsService) GetBrowserStats(userID string) ([]repositories.ValueClicks, error) {
	if err := s.requireAnalytics(userID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.BrowserStats(userID)
}

func (s *analyticsService) GetReferrerStats(userID string) ([]repositories.ValueClicks, error) {
	if err := s.requireAnalytics(userID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.ReferrerStats(userID, referrerStatsLimit)
}

func (s *analyticsService) GetTodayClicks(userID string) (int64, error) {
	if err := s.requireAnalytics(userID); err != nil {
		return 0, err
	}
	return s.analyticsRepo.CountToday(userID)
}

// Breakdown endpoints fail closed; only the summary degrades.
func (s *analyticsService) requireAnalytics(userID string) error {
	ents, err := s.entitlements.ResolveEntitlements(userID)
	if err != nil {
		return err
	}
	if !ents.AnalyticsEnabled {
		return apperrors.ErrAnalyticsNotIncluded
	}
	return nil
}
