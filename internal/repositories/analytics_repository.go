package repositories

import (
	"time"

	"linkbio_backend/internal/models"

	"gorm.io/gorm"
)

// LinkClicks is the per-link click breakdown row.
type LinkClicks struct {
	LinkID string `json:"link_id"`
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
}

// DateClicks is one calendar day of the clicks-over-time series. Days
// with zero clicks produce no row.
type DateClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// ValueClicks is a generic group-by count (device, browser, referrer).
type ValueClicks struct {
	Value  string `json:"value"`
	Clicks int64  `json:"clicks"`
}

type AnalyticsRepository interface {
	CreateEvent(event *models.ClickEvent) error
	CountByUser(userID string) (int64, error)
	CountToday(userID string) (int64, error)
	ClicksPerLink(userID string) ([]LinkClicks, error)
	// ClicksOverTime returns a sparse per-day series for the trailing
	// window of `days` days.
	ClicksOverTime(userID string, days int) ([]DateClicks, error)
	DeviceStats(userID string) ([]ValueClicks, error)
	BrowserStats(userID string) ([]ValueClicks, error)
	ReferrerStats(userID string, limit int) ([]ValueClicks, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) CreateEvent(event *models.ClickEvent) error {
	if event.ClickedAt.IsZero() {
		event.ClickedAt = time.Now()
	}
	return r.db.Create(event).Error
}

func (r *AnalyticsRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ClickEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) CountToday(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ClickEvent{}).
		Where("user_id = ? AND clicked_at >= CURRENT_DATE", userID).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) ClicksPerLink(userID string) ([]LinkClicks, error) {
	var rows []LinkClicks
	err := r.db.Model(&models.ClickEvent{}).
		Select("click_events.link_id, links.title, COUNT(*) AS clicks").
		Joins("INNER JOIN links ON links.id = click_events.link_id").
		Where("click_events.user_id = ?", userID).
		Group("click_events.link_id, links.title").
		Order("clicks DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) ClicksOverTime(userID string, days int) ([]DateClicks, error) {
	var rows []DateClicks
	err := r.db.Model(&models.ClickEvent{}).
		Select("DATE(clicked_at)::text AS date, COUNT(*) AS clicks").
		Where("user_id = ? AND clicked_at >= CURRENT_DATE - ? * INTERVAL '1 day'", userID, days).
		Group("DATE(clicked_at)").
		Order("DATE(clicked_at) ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) DeviceStats(userID string) ([]ValueClicks, error) {
	return r.groupBy(userID, "device", 0)
}

func (r *AnalyticsRepositoryImpl) BrowserStats(userID string) ([]ValueClicks, error) {
	return r.groupBy(userID, "browser", 0)
}

func (r *AnalyticsRepositoryImpl) ReferrerStats(userID string, limit int) ([]ValueClicks, error) {
	return r.groupBy(userID, "referrer", limit)
}

func (r *AnalyticsRepositoryImpl) groupBy(userID, column string, limit int) ([]ValueClicks, error) {
	var rows []ValueClicks
	query := r.db.Model(&models.ClickEvent{}).
		Select(column+" AS value, COUNT(*) AS clicks").
		Where("user_id = ? AND "+column+" <> ''", userID).
		Group(column).
		Order("clicks DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&rows).Error
	return rows, err
}
